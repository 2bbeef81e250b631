// SPDX-License-Identifier: MIT
// Package: cssel/manifest
//
// build.go - turning a validated Document into built selector values.
//
// Design contract (strict):
//   - One orchestrator: (*Document).Build(). Entries build strictly in
//     document order; refs resolve against what was built so far.
//   - Per-entry failures are aggregated with multierr and reported
//     together; a failed entry is simply absent from the result, it never
//     blocks later entries (unless they ref it, which then reports
//     ErrUnknownRef for that entry too).
//   - All construction flows through the selector façade, so every
//     manifest entry obeys the same ordering/uniqueness invariants as
//     fluent code.

package manifest

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/cssel/selector"
)

// Build constructs every entry in document order and returns them by name.
// The returned map contains every entry that built successfully even when
// err is non-nil; err aggregates all per-entry failures.
func (d *Document) Build() (map[string]*selector.Selector, error) {
	built := make(map[string]*selector.Selector, len(d.Selectors))

	var errs error
	for i, e := range d.Selectors {
		sel, err := buildNode(&e.Node, built)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selectors[%d] %q: %w", i, e.Name, err))

			continue
		}
		built[e.Name] = sel
	}

	return built, errs
}

// buildNode constructs one node against the selectors built so far.
func buildNode(n *Node, built map[string]*selector.Selector) (*selector.Selector, error) {
	// Combination form.
	if n.Combine != nil {
		left, err := buildNode(n.Combine.Left, built)
		if err != nil {
			return nil, fmt.Errorf("combine left: %w", err)
		}
		right, err := buildNode(n.Combine.Right, built)
		if err != nil {
			return nil, fmt.Errorf("combine right: %w", err)
		}

		return selector.Combine(left, selector.Combinator(n.Combine.Op), right)
	}

	// Fragment form: resolve the base, then apply fragments in canonical
	// order so a structurally valid node builds without order violations.
	var sel *selector.Selector
	if n.Ref != "" {
		base, ok := built[n.Ref]
		if !ok {
			return nil, fmt.Errorf("ref %q: %w", n.Ref, ErrUnknownRef)
		}
		sel = base
	}

	var err error
	if n.Element != "" {
		if sel, err = sel.Element(n.Element); err != nil {
			return nil, err
		}
	}
	if n.ID != "" {
		if sel, err = sel.ID(n.ID); err != nil {
			return nil, err
		}
	}
	for _, c := range n.Classes {
		if sel, err = sel.Class(c); err != nil {
			return nil, err
		}
	}
	for _, a := range n.Attrs {
		if sel, err = sel.Attr(a); err != nil {
			return nil, err
		}
	}
	for _, p := range n.PseudoClasses {
		if sel, err = sel.PseudoClass(p); err != nil {
			return nil, err
		}
	}
	if n.PseudoElement != "" {
		if sel, err = sel.PseudoElement(n.PseudoElement); err != nil {
			return nil, err
		}
	}

	return sel, nil
}
