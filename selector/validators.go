// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// validators.go - ancestor-chain validation for fragment extension.
//
// Contract:
//   - Walk the owned parent chain only; never inspect combination operands
//     (a combination is an opaque base — its sides were validated when
//     they were built, and fragments added after it start a fresh chain).
//   - Singleton rule first, then ordering, per ancestor, nearest-first.
//   - Return only sentinel errors; never panic.
//
// Complexity:
//   - Time: O(L) over the chain length L. Space: O(1).

package selector

// checkExtend reports whether a fragment of the given kind may extend the
// chain ending at s (nil s = empty chain, always extendable).
func (s *Selector) checkExtend(kind Kind) error {
	// Walk tip-to-root over the fragment chain; stop at a combination,
	// which acts as an opaque root for ordering purposes.
	for node := s; node != nil && !node.isCombination(); node = node.parent {
		// Singleton rule: element, id, pseudo-element at most once.
		if node.kind == kind && kind.singleton() {
			return ErrDuplicateFragment
		}
		// Ordering rule: reject if any ancestor kind strictly follows kind.
		if node.kind > kind {
			return ErrFragmentOrder
		}
	}

	return nil
}
