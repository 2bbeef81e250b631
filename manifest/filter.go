// SPDX-License-Identifier: MIT
// Package: cssel/manifest
//
// filter.go - selecting entry names with a user-supplied pattern.
//
// Patterns come from CLI flags, so they are compiled with regexp2 to keep
// the richer syntax users expect from modern regex engines (lookarounds,
// backreferences) without pre-screening what stdlib regexp would reject.

package manifest

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Filter returns the names matching pattern, preserving input order.
// An empty pattern matches every name.
func Filter(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}

	re, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return nil, fmt.Errorf("manifest: invalid filter pattern %q: %w", pattern, err)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := re.MatchString(name)
		if err != nil {
			return nil, fmt.Errorf("manifest: match %q against %q: %w", name, pattern, err)
		}
		if ok {
			out = append(out, name)
		}
	}

	return out, nil
}
