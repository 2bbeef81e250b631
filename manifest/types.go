// Package manifest YAML document types. Loading lives in loader.go,
// construction in build.go, name filtering in filter.go.
package manifest

// Document is the root of a selectors manifest.
type Document struct {
	// Selectors lists entries in build order; later entries may reference
	// earlier ones by name.
	Selectors []*Entry `yaml:"selectors"`
}

// Entry is one named selector in a Document.
type Entry struct {
	// Name uniquely identifies the entry within the document.
	Name string `yaml:"name"`

	// Node describes how the selector is constructed.
	Node `yaml:",inline"`
}

// Node describes one selector construction. Exactly one form applies:
//
//   - fragment form: any of Element/ID/Classes/Attrs/PseudoClasses/
//     PseudoElement, optionally extending the entry named by Ref;
//   - combination form: Combine, exclusive of all other fields.
type Node struct {
	// Ref names an earlier entry whose built value this node extends.
	Ref string `yaml:"ref,omitempty"`

	// Fragment fields, applied in canonical order.
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attrs         []string `yaml:"attrs,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	// Combine joins two sub-nodes with a combinator token.
	Combine *CombineNode `yaml:"combine,omitempty"`
}

// CombineNode is the combination form of a Node.
type CombineNode struct {
	// Left and Right are full nodes themselves, so combinations nest.
	Left  *Node `yaml:"left"`
	Right *Node `yaml:"right"`

	// Op is the combinator token: " ", "+", "~" or ">".
	Op string `yaml:"op"`
}

// hasFragments reports whether any fragment field is set.
func (n *Node) hasFragments() bool {
	return n.Element != "" || n.ID != "" || len(n.Classes) > 0 ||
		len(n.Attrs) > 0 || len(n.PseudoClasses) > 0 || n.PseudoElement != ""
}

// Names returns entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Selectors))
	for _, e := range d.Selectors {
		names = append(names, e.Name)
	}

	return names
}
