// Package manifest builds named selectors from a declarative YAML
// document, driving the selector package's constructors so every entry is
// validated by the same ordering and uniqueness rules as fluent code.
//
// What:
//
//   - A Document lists selectors in order; each entry has a unique name
//     and is either a set of fragment fields, a combination, or a reference to an
//     earlier entry (optionally extended with more fragments).
//   - Build constructs every entry through the selector façade and
//     aggregates per-entry failures, so one bad entry never masks the rest.
//   - Filter narrows entry names with a user-supplied regular expression.
//
// Why:
//
//   - Style pipelines: keep selector families in reviewable YAML instead
//     of string templates.
//   - Reuse: `ref` shares one built base across many entries, exercising
//     the selector package's persistence law.
//
// Schema:
//
//	selectors:
//	  - name: box
//	    element: div
//	    id: main
//	    classes: [container, draggable]
//	    attrs: ['href$=".png"']
//	    pseudo_classes: [focus]
//	    pseudo_element: before
//	  - name: pair
//	    combine:
//	      left: { ref: box }
//	      op: "+"
//	      right: { element: p }
//
// A node is exactly one of: fragment fields (optionally on top of `ref`),
// or `combine`. Fragments are applied in canonical order (element, id,
// classes, attrs, pseudo_classes, pseudo_element), so a structurally valid
// node can only fail when it extends a ref past a conflicting fragment.
//
// Errors:
//
//   - ErrNoName: an entry without a name.
//   - ErrDuplicateName: two entries sharing a name.
//   - ErrUnknownRef: a ref to a name not built earlier in the document.
//   - ErrAmbiguousNode: combine mixed with fragment fields or ref.
//   - ErrEmptyNode: a node with no fields at all.
//   - selector sentinels (ErrFragmentOrder, ...) wrapped with entry context.
package manifest
