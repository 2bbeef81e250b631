// SPDX-License-Identifier: MIT
// Package: cssel/selector
//
// render.go - canonical string rendering for both Selector variants.
//
// Contract:
//   - Fragment chain: render the parent first (empty for nil), then this
//     node's fragment text; fragments join with NO separator, so adjacent
//     fragments visually merge ("#main.container").
//   - Combination: "<left> <op> <right>" with single spaces around the
//     token, recursively and without parentheses. A nested whitespace
//     combinator therefore renders as three consecutive spaces — this is
//     the documented output, reproduced literally for compatibility.
//   - Pure read-only traversal: deterministic, idempotent, no side effects.
//
// Complexity:
//   - Time: O(N) over all nodes. Space: O(D) stack for depth D plus the
//     output buffer.

package selector

import "strings"

// String renders the canonical CSS text for the selector. It never fails
// for a validly constructed value; a nil selector renders as "".
func (s *Selector) String() string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	s.render(&b)

	return b.String()
}

// render appends the selector's text to b, root-to-tip and left-to-right.
func (s *Selector) render(b *strings.Builder) {
	if s == nil {
		return
	}

	// Combination node: "<left> <op> <right>".
	if s.isCombination() {
		s.left.render(b)
		b.WriteByte(' ')
		b.WriteString(string(s.op))
		b.WriteByte(' ')
		s.right.render(b)

		return
	}

	// Fragment node: parent first, then this fragment's own text.
	s.parent.render(b)
	b.WriteString(s.kind.prefix())
	b.WriteString(s.value)
	b.WriteString(s.kind.suffix())
}
