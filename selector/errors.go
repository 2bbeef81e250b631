// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Constructors attach context using `%w` (method name + offending value).
//   • Construction never panics; a rejected call returns no value at all and
//     leaves every previously built selector untouched.

package selector

import "errors"

// ErrDuplicateFragment indicates a second element, id, or pseudo-element
// fragment was added to a chain that already contains one. Those three kinds
// may occur at most once per chain.
// Usage: if errors.Is(err, ErrDuplicateFragment) { /* drop the extra fragment */ }.
var ErrDuplicateFragment = errors.New("selector: element, id and pseudo-element may occur at most once per selector")

// ErrFragmentOrder indicates a fragment was added whose kind precedes, in
// the canonical order, a kind already present in an ancestor. Fragments must
// follow the order: element, id, class, attribute, pseudo-class,
// pseudo-element.
// Usage: if errors.Is(err, ErrFragmentOrder) { /* reorder the calls */ }.
var ErrFragmentOrder = errors.New("selector: fragments must follow the order: element, id, class, attribute, pseudo-class, pseudo-element")

// ErrBadCombinator indicates Combine received a token outside the accepted
// set {' ', '+', '~', '>'}.
// Usage: if errors.Is(err, ErrBadCombinator) { /* fix the token */ }.
var ErrBadCombinator = errors.New("selector: combinator must be one of ' ', '+', '~', '>'")

// ErrNilSelector indicates Combine received a nil operand. Both sides of a
// combination must be already built selectors.
// Usage: if errors.Is(err, ErrNilSelector) { /* build the operand first */ }.
var ErrNilSelector = errors.New("selector: nil selector operand")
