// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// api.go - public construction surface: root constructors, fragment
// extension methods, and Combine.
//
// Design contract (strict):
//   - Root constructors (Element, ID, ...) start a fresh chain and cannot
//     fail: an empty chain has nothing to conflict with.
//   - Extension methods return (*Selector, error); validation runs against
//     the full ancestor chain BEFORE the new node is allocated, so a
//     rejected call produces no value and the receiver is untouched.
//   - Determinism: same call sequence ⇒ identical value ⇒ identical String.
//   - Safety: never panic; return sentinel errors wrapped with the method
//     name and offending value via %w.

package selector

import "fmt"

// File-local constants for method tagging in error context.
const (
	methodElement       = "Element"
	methodID            = "ID"
	methodClass         = "Class"
	methodAttr          = "Attr"
	methodPseudoClass   = "PseudoClass"
	methodPseudoElement = "PseudoElement"
	methodCombine       = "Combine"
)

// Element starts a new chain with a type selector fragment.
// Complexity: O(1).
func Element(value string) *Selector {
	return &Selector{kind: KindElement, value: value}
}

// ID starts a new chain with an id fragment.
// Complexity: O(1).
func ID(value string) *Selector {
	return &Selector{kind: KindID, value: value}
}

// Class starts a new chain with a class fragment.
// Complexity: O(1).
func Class(value string) *Selector {
	return &Selector{kind: KindClass, value: value}
}

// Attr starts a new chain with an attribute fragment. The value is the full
// bracket payload (e.g. `href$=".png"`) and is passed through opaquely.
// Complexity: O(1).
func Attr(value string) *Selector {
	return &Selector{kind: KindAttribute, value: value}
}

// PseudoClass starts a new chain with a pseudo-class fragment. Arguments
// (e.g. "nth-of-type(even)") are part of the value and passed through
// opaquely.
// Complexity: O(1).
func PseudoClass(value string) *Selector {
	return &Selector{kind: KindPseudoClass, value: value}
}

// PseudoElement starts a new chain with a pseudo-element fragment.
// Complexity: O(1).
func PseudoElement(value string) *Selector {
	return &Selector{kind: KindPseudoElement, value: value}
}

// Element extends the chain with a type selector fragment.
// Fails with ErrDuplicateFragment or ErrFragmentOrder.
func (s *Selector) Element(value string) (*Selector, error) {
	return s.extend(methodElement, KindElement, value)
}

// ID extends the chain with an id fragment.
// Fails with ErrDuplicateFragment or ErrFragmentOrder.
func (s *Selector) ID(value string) (*Selector, error) {
	return s.extend(methodID, KindID, value)
}

// Class extends the chain with a class fragment. Classes may repeat.
// Fails with ErrFragmentOrder.
func (s *Selector) Class(value string) (*Selector, error) {
	return s.extend(methodClass, KindClass, value)
}

// Attr extends the chain with an attribute fragment. Attributes may repeat.
// Fails with ErrFragmentOrder.
func (s *Selector) Attr(value string) (*Selector, error) {
	return s.extend(methodAttr, KindAttribute, value)
}

// PseudoClass extends the chain with a pseudo-class fragment.
// Pseudo-classes may repeat. Fails with ErrFragmentOrder.
func (s *Selector) PseudoClass(value string) (*Selector, error) {
	return s.extend(methodPseudoClass, KindPseudoClass, value)
}

// PseudoElement extends the chain with a pseudo-element fragment.
// Fails with ErrDuplicateFragment or ErrFragmentOrder.
func (s *Selector) PseudoElement(value string) (*Selector, error) {
	return s.extend(methodPseudoElement, KindPseudoElement, value)
}

// extend validates kind against the receiver's ancestor chain and, on
// success, allocates the new fragment node. A nil receiver is the empty
// chain, so extend never dereferences s before the walk.
// Complexity: O(L) over the chain length.
func (s *Selector) extend(method string, kind Kind, value string) (*Selector, error) {
	// Validate BEFORE allocating: a rejected call must return no value.
	if err := s.checkExtend(kind); err != nil {
		// Preserve sentinel semantics with deterministic context message.
		return nil, fmt.Errorf("%s(%q): %w", method, value, err)
	}

	// Allocate the new node; the receiver remains a reusable base.
	return &Selector{parent: s, kind: kind, value: value}, nil
}

// Combine joins two built selectors with a combinator token.
//
// Only the token is validated (each side already passed chain validation
// when it was built); operands are stored as-is and must not be nil.
// Complexity: O(1).
//
// Errors:
//   - ErrNilSelector when either operand is nil.
//   - ErrBadCombinator when op is outside {' ', '+', '~', '>'}.
func Combine(left *Selector, op Combinator, right *Selector) (*Selector, error) {
	// Reject nil operands early: a combination owns two whole selectors.
	if left == nil || right == nil {
		return nil, fmt.Errorf("%s: %w", methodCombine, ErrNilSelector)
	}
	// Reject tokens outside the accepted set.
	if !op.Valid() {
		return nil, fmt.Errorf("%s(%q): %w", methodCombine, string(op), ErrBadCombinator)
	}

	return &Selector{left: left, right: right, op: op}, nil
}
