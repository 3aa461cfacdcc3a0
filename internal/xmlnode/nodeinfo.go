package xmlnode

import (
	"github.com/xmldiff/xmldiff/internal/bigram"
	"github.com/xmldiff/xmldiff/internal/schema"
)

// TextProperty is the reserved property name inline character data is
// stored under. It is prefixed with '&' so it cannot collide with any XML
// attribute local name.
const TextProperty = "&text"

// NodeInfo is the intermediate parse product for one XML element: its
// path-qualified structural signature, its raw properties (attributes plus
// inline text), and its child elements. Child NodeInfos are constructed
// lazily, on first call to Children, but registration of this node's own
// signature and property names happens eagerly, in the constructor.
type NodeInfo struct {
	Signature  string
	Properties map[string]bigram.Bigram

	element   Element
	predicate func(Element) bool
	registry  *schema.Registry

	children      []*NodeInfo
	childrenBuilt bool
}

// New builds a NodeInfo for el, registering its signature and property
// names in registry. parentSignature is "" at the document root.
func New(el Element, parentSignature string, predicate func(Element) bool, registry *schema.Registry) *NodeInfo {
	signature := el.LocalName()
	if parentSignature != "" {
		signature = parentSignature + "." + el.LocalName()
	}

	props := map[string]bigram.Bigram{}
	names := make([]string, 0, len(el.Attrs())+1)
	for _, a := range el.Attrs() {
		props[a.Name] = bigram.New(a.Value)
		names = append(names, a.Name)
	}
	if text, ok := el.Text(); ok {
		props[TextProperty] = bigram.New(text)
		names = append(names, TextProperty)
	}

	registry.AddPropertyNames(signature, names)

	return &NodeInfo{
		Signature:  signature,
		Properties: props,
		element:    el,
		predicate:  predicate,
		registry:   registry,
	}
}

// Element returns the underlying element handle, for later edit reporting.
func (n *NodeInfo) Element() Element {
	return n.element
}

// Children lazily constructs and caches this node's child NodeInfos,
// filtering el.Children() through the predicate supplied at construction.
// Elements the predicate rejects are omitted here, together with their
// subtrees; their attributes and text are never read. The predicate does
// not affect this node's own Properties, which New already extracted from
// this node's attributes and text.
func (n *NodeInfo) Children() []*NodeInfo {
	if n.childrenBuilt {
		return n.children
	}
	n.childrenBuilt = true

	for _, child := range n.element.Children() {
		if n.predicate != nil && !n.predicate(child) {
			continue
		}
		n.children = append(n.children, New(child, n.Signature, n.predicate, n.registry))
	}
	return n.children
}
