package extraction

import "github.com/siherrmann/metamodel/model"

// SourceKind tells where a schema definition was found
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceGroup
	SourceReference
)

func (k SourceKind) String() string {
	switch k {
	case SourceGroup:
		return "group"
	case SourceReference:
		return "reference"
	default:
		return "none"
	}
}

// Source is the raw material of a schema: its entities and the relationships
// of the view that contains them.
type Source struct {
	Kind          SourceKind
	Name          string
	Entities      []*model.Entity
	Relationships []*model.Relationship
	Debug         bool
}

// SourceFunc looks for a schema definition on a view.
// It returns false if the view has none of its kind.
type SourceFunc func(view *model.View, config model.Config) (*Source, bool)

// GroupSource finds the first group carrying the meta property. The schema is
// made of the elements nested anywhere inside the group and the relationships
// drawn on the view.
func GroupSource(view *model.View, config model.Config) (*Source, bool) {
	for _, group := range view.NodesOfKind(model.NodeKindGroup) {
		if _, ok := group.Property(config.MetaProperty); !ok {
			continue
		}
		debug, _ := group.Property(config.DebugProperty)
		return &Source{
			Kind:          SourceGroup,
			Name:          group.Name,
			Entities:      group.Elements(),
			Relationships: view.Relationships,
			Debug:         debug == "true",
		}, true
	}
	return nil, false
}

// ReferenceSource finds the first view reference whose referenced view carries
// the meta property. Every element of the referenced view belongs to the schema.
func ReferenceSource(view *model.View, config model.Config) (*Source, bool) {
	for _, reference := range view.NodesOfKind(model.NodeKindReference) {
		referenced := reference.RefView()
		if referenced == nil {
			continue
		}
		if _, ok := referenced.Property(config.MetaProperty); !ok {
			continue
		}
		debug, _ := referenced.Property(config.DebugProperty)
		return &Source{
			Kind:          SourceReference,
			Name:          referenced.Name,
			Entities:      referenced.Elements(),
			Relationships: referenced.Relationships,
			Debug:         debug == "true",
		}, true
	}
	return nil, false
}
