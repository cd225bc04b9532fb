package model

import "github.com/google/uuid"

// NodeKind discriminates the visual objects placed on a view
type NodeKind int

const (
	NodeKindGroup NodeKind = iota
	NodeKindElement
	NodeKindReference
	NodeKindNote
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindGroup:
		return "group"
	case NodeKindElement:
		return "element"
	case NodeKindReference:
		return "reference"
	case NodeKindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Node is a visual object on a view. Only element nodes wrap a concept,
// only reference nodes point to another view.
type Node struct {
	ID         string
	Kind       NodeKind
	Name       string
	Properties Properties
	Children   []*Node

	concept *Entity
	refView *View
}

// NewGroup creates a grouping container
func NewGroup(name string, properties Properties, children ...*Node) *Node {
	return &Node{
		ID:         uuid.NewString(),
		Kind:       NodeKindGroup,
		Name:       name,
		Properties: properties,
		Children:   children,
	}
}

// NewElementNode creates a visual node wrapping the given concept
func NewElementNode(concept *Entity, children ...*Node) *Node {
	name := ""
	if concept != nil {
		name = concept.Name
	}
	return &Node{
		ID:       uuid.NewString(),
		Kind:     NodeKindElement,
		Name:     name,
		Children: children,
		concept:  concept,
	}
}

// NewReferenceNode creates a view reference. refView may be set later with SetRefView.
func NewReferenceNode(refView *View) *Node {
	name := ""
	if refView != nil {
		name = refView.Name
	}
	return &Node{
		ID:      uuid.NewString(),
		Kind:    NodeKindReference,
		Name:    name,
		refView: refView,
	}
}

// NewNote creates an untyped visual node
func NewNote(name string, children ...*Node) *Node {
	return &Node{
		ID:       uuid.NewString(),
		Kind:     NodeKindNote,
		Name:     name,
		Children: children,
	}
}

// Concept returns the wrapped concept of an element node
func (n *Node) Concept() (*Entity, bool) {
	if n == nil || n.Kind != NodeKindElement || n.concept == nil {
		return nil, false
	}
	return n.concept, true
}

// IsTyped reports whether the node wraps a modeled concept
func (n *Node) IsTyped() bool {
	_, ok := n.Concept()
	return ok
}

// RefView returns the view a reference node points to
func (n *Node) RefView() *View {
	if n == nil || n.Kind != NodeKindReference {
		return nil
	}
	return n.refView
}

// SetRefView sets the referenced view of a reference node
func (n *Node) SetRefView(v *View) {
	if n.Kind != NodeKindReference {
		return
	}
	n.refView = v
	if n.Name == "" && v != nil {
		n.Name = v.Name
	}
}

// Property returns a tag of the node and whether it is present
func (n *Node) Property(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	return n.Properties.Lookup(key)
}

// VisualChildren returns the ordered visual children of the node
func (n *Node) VisualChildren() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// AddChildren appends visual children
func (n *Node) AddChildren(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Descendants returns all visual descendants in depth-first preorder, excluding n
func (n *Node) Descendants() []*Node {
	var result []*Node
	for _, child := range n.VisualChildren() {
		result = append(result, child)
		result = append(result, child.Descendants()...)
	}
	return result
}

// Elements returns the concepts of all element descendants in preorder
func (n *Node) Elements() []*Entity {
	return conceptsOf(n.Descendants())
}

// View is a diagram: nested visual objects plus the relationships drawn on it
type View struct {
	ID            string
	Name          string
	Properties    Properties
	Children      []*Node
	Relationships []*Relationship
}

// NewView creates an empty view
func NewView(name string, properties Properties) *View {
	return &View{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: properties,
	}
}

// Property returns a tag of the view and whether it is present
func (v *View) Property(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	return v.Properties.Lookup(key)
}

// AddChildren appends top level visual objects
func (v *View) AddChildren(children ...*Node) {
	v.Children = append(v.Children, children...)
}

// AddRelationships appends relationships drawn on the view
func (v *View) AddRelationships(relationships ...*Relationship) {
	v.Relationships = append(v.Relationships, relationships...)
}

// Nodes returns every visual object on the view in depth-first preorder
func (v *View) Nodes() []*Node {
	if v == nil {
		return nil
	}
	var result []*Node
	for _, child := range v.Children {
		result = append(result, child)
		result = append(result, child.Descendants()...)
	}
	return result
}

// NodesOfKind returns every visual object of the given kind in preorder
func (v *View) NodesOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, node := range v.Nodes() {
		if node.Kind == kind {
			result = append(result, node)
		}
	}
	return result
}

// Elements returns the concepts of all element nodes in preorder
func (v *View) Elements() []*Entity {
	return conceptsOf(v.Nodes())
}

func conceptsOf(nodes []*Node) []*Entity {
	var result []*Entity
	for _, node := range nodes {
		if concept, ok := node.Concept(); ok {
			result = append(result, concept)
		}
	}
	return result
}
