// Package selector composes CSS selector strings from immutable values:
// fragment chains describing one compound selector, and combinations
// joining two selectors with a combinator token.
//
// What:
//
//   - Selector is a persistent value: every fragment call returns a NEW
//     Selector extending the receiver; the receiver stays valid as a base
//     for any number of further extensions.
//   - Six fragment kinds: element, id, class, attribute, pseudo-class,
//     pseudo-element. Rendered as `v`, `#v`, `.v`, `[v]`, `:v`, `::v`.
//   - Combine joins two built selectors with one of ' ', '+', '~', '>'.
//   - String renders canonical text: fragments root-to-tip with no
//     separators, combinations as "<left> <op> <right>".
//
// Why:
//
//   - Style tooling: emit selectors from structured descriptions without
//     hand-concatenating strings.
//   - Test fixtures: build families of related selectors from shared bases.
//   - Validation: catch ordering and uniqueness mistakes at the exact call
//     that introduces them, not when the string is finally used.
//
// Ordering contract (checked at construction by walking the parent chain):
//
//   - Canonical order within one chain: element, id, class, attribute,
//     pseudo-class, pseudo-element. A fragment is rejected when any
//     ancestor carries a kind that strictly follows it.
//   - element, id and pseudo-element are singletons per chain; class,
//     attribute and pseudo-class may repeat.
//   - Combinations carry no such restriction; each side was validated
//     when it was built. Extending a combination starts a fresh chain
//     whose fragments attach to the rendered right end.
//
// Complexity:
//
//   - Fragment call: O(L) ancestor walk, L = chain length; O(1) space.
//   - Combine: O(1).
//   - String: O(N) over all nodes, one pass, no allocations beyond the
//     output buffer.
//
// Concurrency:
//
//   - Values are immutable after construction. Concurrent String calls and
//     concurrent extension of a shared base are safe without locks.
//
// Errors:
//
//   - ErrDuplicateFragment: second element/id/pseudo-element in one chain.
//   - ErrFragmentOrder: fragment precedes a kind already present.
//   - ErrBadCombinator: Combine token outside ' ', '+', '~', '>'.
//   - ErrNilSelector: Combine received a nil operand.
package selector
