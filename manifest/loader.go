// SPDX-License-Identifier: MIT
// Package: cssel/manifest
//
// loader.go - reading and structural validation of manifest documents.
//
// Contract:
//   - Load/Parse reject a document whose SHAPE is wrong (missing names,
//     duplicate names, ambiguous or empty nodes, unknown combinator
//     tokens) before any selector is built.
//   - Fragment payloads are passed through opaquely; the loader never
//     inspects value syntax.
//   - Structural errors abort loading with the offending entry's index and
//     name in the context chain.

package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cssel/selector"
)

// Load reads and parses a manifest file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a manifest document and validates its structure.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: unmarshal yaml: %w", err)
	}

	// Validate each entry's shape before anything is built.
	seen := make(map[string]struct{}, len(doc.Selectors))
	for i, e := range doc.Selectors {
		if e.Name == "" {
			return nil, fmt.Errorf("selectors[%d]: %w", i, ErrNoName)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("selectors[%d] %q: %w", i, e.Name, ErrDuplicateName)
		}
		seen[e.Name] = struct{}{}

		if err := validateNode(&e.Node); err != nil {
			return nil, fmt.Errorf("selectors[%d] %q: %w", i, e.Name, err)
		}
	}

	return &doc, nil
}

// validateNode checks one node's shape recursively.
func validateNode(n *Node) error {
	if n == nil {
		return ErrEmptyNode
	}

	// Combination form excludes every other field.
	if n.Combine != nil {
		if n.hasFragments() || n.Ref != "" {
			return ErrAmbiguousNode
		}
		if !selector.Combinator(n.Combine.Op).Valid() {
			return fmt.Errorf("combine op %q: %w", n.Combine.Op, selector.ErrBadCombinator)
		}
		if err := validateNode(n.Combine.Left); err != nil {
			return fmt.Errorf("combine left: %w", err)
		}
		if err := validateNode(n.Combine.Right); err != nil {
			return fmt.Errorf("combine right: %w", err)
		}

		return nil
	}

	// Fragment form: a bare ref is fine (an alias), but a node with
	// nothing at all is a mistake.
	if !n.hasFragments() && n.Ref == "" {
		return ErrEmptyNode
	}

	return nil
}
