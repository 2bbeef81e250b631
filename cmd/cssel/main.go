package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cssel/manifest"
)

var (
	manifestFile string
	only         string
	output       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cssel",
		Short: "Render CSS selectors from a YAML manifest",
		Long: `cssel builds CSS selector strings from a declarative YAML manifest.
Entries are constructed through the selector package, so fragment ordering
and uniqueness rules are enforced per entry; later entries may reuse
earlier ones by name via ref.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "Manifest file with named selectors (required)")
	rootCmd.Flags().StringVar(&only, "only", "", "Render only entries whose name matches this pattern")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (optional, defaults to stdout)")

	rootCmd.MarkFlagRequired("manifest")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	doc, err := manifest.Load(manifestFile)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	built, err := doc.Build()
	if err != nil {
		return fmt.Errorf("build selectors: %w", err)
	}

	names, err := manifest.Filter(doc.Names(), only)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, built[name])
	}

	if output == "" {
		fmt.Print(b.String())

		return nil
	}

	if err := os.WriteFile(output, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
