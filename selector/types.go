// Package selector core types: fragment kinds, combinator tokens, and the
// two-variant Selector value.
//
// This file declares Kind, Combinator, Selector, and the kind→syntax
// mapping used by the renderer. Construction lives in api.go, validation
// in validators.go, rendering in render.go.
package selector

// Kind identifies which syntactic piece of a compound selector a fragment
// node contributes. The numeric order of the constants IS the canonical
// left-to-right order fragments must follow within one chain.
type Kind uint8

const (
	// KindElement is a type selector fragment, rendered as the bare value.
	KindElement Kind = iota + 1
	// KindID is an id fragment, rendered as "#value".
	KindID
	// KindClass is a class fragment, rendered as ".value".
	KindClass
	// KindAttribute is an attribute fragment, rendered as "[value]".
	KindAttribute
	// KindPseudoClass is a pseudo-class fragment, rendered as ":value".
	KindPseudoClass
	// KindPseudoElement is a pseudo-element fragment, rendered as "::value".
	KindPseudoElement
)

// kindNames maps each Kind to its spelling in error messages and docs.
var kindNames = map[Kind]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// String returns the human-readable name of the kind ("element", "id", ...).
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return "unknown"
}

// singleton reports whether at most one fragment of this kind may appear
// in a single chain (element, id, pseudo-element).
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// prefix returns the text written before the fragment value.
func (k Kind) prefix() string {
	switch k {
	case KindID:
		return "#"
	case KindClass:
		return "."
	case KindAttribute:
		return "["
	case KindPseudoClass:
		return ":"
	case KindPseudoElement:
		return "::"
	default:
		return ""
	}
}

// suffix returns the text written after the fragment value.
// Only attributes close with "]"; every other kind has none.
func (k Kind) suffix() string {
	if k == KindAttribute {
		return "]"
	}

	return ""
}

// Combinator is the token joining two selectors in a combination.
type Combinator string

// The four combinator tokens accepted by Combine.
const (
	// Descendant is the whitespace combinator ("a b").
	Descendant Combinator = " "
	// Child is the direct-child combinator ("a > b").
	Child Combinator = ">"
	// Adjacent is the next-sibling combinator ("a + b").
	Adjacent Combinator = "+"
	// General is the subsequent-sibling combinator ("a ~ b").
	General Combinator = "~"
)

// Valid reports whether c is one of the four accepted combinator tokens.
func (c Combinator) Valid() bool {
	switch c {
	case Descendant, Child, Adjacent, General:
		return true
	default:
		return false
	}
}

// Selector is an immutable CSS selector value in one of two variants:
//
//   - fragment node: parent (nil for the chain root) + kind + value,
//     contributing one fragment to a compound selector;
//   - combination node: left + op + right, joining two built selectors.
//
// A nil *Selector is a valid empty chain: every fragment method treats it
// as the root, so zero values compose cleanly.
//
// Selectors are never mutated after construction; extending one allocates
// a new node referencing the receiver, which stays usable as a base for
// other extensions.
type Selector struct {
	// parent links to the chain this fragment extends; nil at the root.
	parent *Selector

	// kind and value describe the fragment contributed at this node.
	kind  Kind
	value string

	// left/right/op are set only on combination nodes.
	left  *Selector
	right *Selector
	op    Combinator
}

// isCombination reports whether s is a combination node.
func (s *Selector) isCombination() bool {
	return s != nil && s.left != nil
}
