package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/siherrmann/metamodel/helper"
	"github.com/siherrmann/metamodel/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownElement is returned when a reference does not name a declared element
	ErrUnknownElement = errors.New("loader: unknown element")
	// ErrUnknownRelationship is returned when a view draws an undeclared relationship
	ErrUnknownRelationship = errors.New("loader: unknown relationship")
	// ErrUnknownView is returned when a view reference or lookup names no view
	ErrUnknownView = errors.New("loader: unknown view")
	// ErrInvalidNode is returned when a node does not set exactly one kind
	ErrInvalidNode = errors.New("loader: node must set exactly one of group, element, reference or note")
)

// Diagram holds everything read from a diagram file
type Diagram struct {
	Elements      []*model.Entity
	Relationships []*model.Relationship
	Views         []*model.View
}

// View returns the view with the given ID, or the first one with that name
func (d *Diagram) View(idOrName string) (*model.View, error) {
	for _, view := range d.Views {
		if view.ID == idOrName {
			return view, nil
		}
	}
	for _, view := range d.Views {
		if view.Name == idOrName {
			return view, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownView, idOrName)
}

// LoadFile reads a diagram from a YAML file
func LoadFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read diagram file", err)
	}
	return Load(data)
}

// LoadReader reads a diagram from YAML
func LoadReader(r io.Reader) (*Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, helper.NewError("read diagram", err)
	}
	return Load(data)
}

// Load parses a YAML diagram. Elements and relationships are referenced by ID
// or, failing that, by name. Missing IDs are generated.
func Load(data []byte) (*Diagram, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, helper.NewError("decode diagram", err)
	}

	b := newBuilder()

	for _, e := range doc.Elements {
		b.addElement(e)
	}

	for i, r := range doc.Relationships {
		if err := b.addRelationship(r); err != nil {
			return nil, helper.NewError(fmt.Sprintf("relationship %d", i), err)
		}
	}

	// Create all views first so references may point forward
	for _, v := range doc.Views {
		b.addView(v)
	}

	for i, v := range doc.Views {
		if err := b.fillView(b.diagram.Views[i], v); err != nil {
			return nil, helper.NewError(fmt.Sprintf("view %q", b.diagram.Views[i].Name), err)
		}
	}

	return b.diagram, nil
}

type builder struct {
	diagram       *Diagram
	elements      *index[model.Entity]
	relationships *index[model.Relationship]
	views         *index[model.View]
}

func newBuilder() *builder {
	return &builder{
		diagram:       &Diagram{},
		elements:      newIndex[model.Entity](),
		relationships: newIndex[model.Relationship](),
		views:         newIndex[model.View](),
	}
}

func (b *builder) addElement(e elementDocument) {
	entity := &model.Entity{
		ID:             idOrNew(e.ID),
		Name:           e.Name,
		Type:           e.Type,
		Specialization: e.Specialization,
	}
	b.diagram.Elements = append(b.diagram.Elements, entity)
	b.elements.add(entity.ID, entity.Name, entity)
}

func (b *builder) addRelationship(r relationshipDocument) error {
	relType, err := model.ParseRelationshipType(r.Type)
	if err != nil {
		return err
	}
	source, ok := b.elements.get(r.Source)
	if !ok {
		return fmt.Errorf("%w: source %q", ErrUnknownElement, r.Source)
	}
	target, ok := b.elements.get(r.Target)
	if !ok {
		return fmt.Errorf("%w: target %q", ErrUnknownElement, r.Target)
	}

	relationship := &model.Relationship{
		ID:             idOrNew(r.ID),
		Name:           r.Name,
		Type:           relType,
		Specialization: r.Specialization,
		Source:         source,
		Target:         target,
	}
	b.diagram.Relationships = append(b.diagram.Relationships, relationship)
	b.relationships.add(relationship.ID, relationship.Name, relationship)
	return nil
}

func (b *builder) addView(v viewDocument) {
	view := &model.View{
		ID:         idOrNew(v.ID),
		Name:       v.Name,
		Properties: model.Properties(v.Properties),
	}
	b.diagram.Views = append(b.diagram.Views, view)
	b.views.add(view.ID, view.Name, view)
}

func (b *builder) fillView(view *model.View, v viewDocument) error {
	for _, n := range v.Nodes {
		node, err := b.buildNode(n)
		if err != nil {
			return err
		}
		view.AddChildren(node)
	}

	for _, key := range v.Relationships {
		relationship, ok := b.relationships.get(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRelationship, key)
		}
		view.AddRelationships(relationship)
	}
	return nil
}

func (b *builder) buildNode(n nodeDocument) (*model.Node, error) {
	kinds := 0
	for _, s := range []string{n.Group, n.Element, n.Reference, n.Note} {
		if s != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return nil, ErrInvalidNode
	}

	var node *model.Node
	switch {
	case n.Group != "":
		node = model.NewGroup(n.Group, model.Properties(n.Properties))
	case n.Element != "":
		concept, ok := b.elements.get(n.Element)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, n.Element)
		}
		node = model.NewElementNode(concept)
		node.Properties = model.Properties(n.Properties)
	case n.Reference != "":
		referenced, ok := b.views.get(n.Reference)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownView, n.Reference)
		}
		node = model.NewReferenceNode(referenced)
		node.Properties = model.Properties(n.Properties)
	default:
		node = model.NewNote(n.Note)
		node.Properties = model.Properties(n.Properties)
	}

	for _, c := range n.Children {
		child, err := b.buildNode(c)
		if err != nil {
			return nil, err
		}
		node.AddChildren(child)
	}

	return node, nil
}

// index looks items up by ID first and by name second.
// The first item declared with a name keeps it.
type index[T any] struct {
	byID   map[string]*T
	byName map[string]*T
}

func newIndex[T any]() *index[T] {
	return &index[T]{
		byID:   make(map[string]*T),
		byName: make(map[string]*T),
	}
}

func (i *index[T]) add(id string, name string, item *T) {
	i.byID[id] = item
	if name == "" {
		return
	}
	if _, exists := i.byName[name]; !exists {
		i.byName[name] = item
	}
}

func (i *index[T]) get(key string) (*T, bool) {
	if item, ok := i.byID[key]; ok {
		return item, true
	}
	item, ok := i.byName[key]
	return item, ok
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
