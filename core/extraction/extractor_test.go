package extraction

import (
	"log/slog"
	"testing"

	"github.com/siherrmann/metamodel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntity(id string, entityType string) *model.Entity {
	return &model.Entity{ID: id, Name: id, Type: entityType}
}

// groupView holds a meta group with Actor and Node, plus a diagram element outside of it
func groupView(groupProps model.Properties) (*model.View, *model.Relationship, *model.Relationship) {
	actor := newEntity("actor", "business-role")
	node := newEntity("node", "node")
	outside := newEntity("outside", "node")

	view := model.NewView("Main", nil)
	view.AddChildren(
		model.NewGroup("Meta", groupProps,
			model.NewElementNode(actor),
			model.NewNote("Nested", model.NewElementNode(node)),
		),
		model.NewElementNode(outside),
	)

	inside := model.NewRelationship(model.RelationshipTypeAssignment, actor, node)
	crossing := model.NewRelationship(model.RelationshipTypeAssignment, actor, outside)
	view.AddRelationships(inside, crossing)

	return view, inside, crossing
}

func TestGroupSource(t *testing.T) {
	config := model.DefaultConfig()

	t.Run("Schema from meta group", func(t *testing.T) {
		view, inside, crossing := groupView(model.Properties{"meta": ""})

		schema := ExtractSchema(view, config)

		require.NotNil(t, schema, "Expected a schema from the meta group")
		assert.Len(t, schema.Entities, 2, "Expected nested elements of the group only")
		assert.True(t, schema.ContainsRelationship(inside.ID))
		assert.False(t, schema.ContainsRelationship(crossing.ID), "Expected relationship leaving the group to be dropped")
		assert.False(t, schema.Debug)
	})

	t.Run("Debug property enables debug", func(t *testing.T) {
		view, _, _ := groupView(model.Properties{"meta": "", "debug": "true"})

		schema := ExtractSchema(view, config)

		require.NotNil(t, schema)
		assert.True(t, schema.Debug)
	})

	t.Run("Debug property must be exactly true", func(t *testing.T) {
		view, _, _ := groupView(model.Properties{"meta": "", "debug": "yes"})

		schema := ExtractSchema(view, config)

		require.NotNil(t, schema)
		assert.False(t, schema.Debug)
	})

	t.Run("Config debug overrides the property", func(t *testing.T) {
		view, _, _ := groupView(model.Properties{"meta": ""})
		debugConfig := config
		debugConfig.Debug = true

		schema := ExtractSchema(view, debugConfig)

		require.NotNil(t, schema)
		assert.True(t, schema.Debug)
	})

	t.Run("First meta group wins", func(t *testing.T) {
		view, _, _ := groupView(model.Properties{"meta": ""})
		view.AddChildren(model.NewGroup("Second", model.Properties{"meta": ""}, model.NewElementNode(newEntity("x", "node"))))

		source, ok := GroupSource(view, config)

		require.True(t, ok)
		assert.Equal(t, "Meta", source.Name)
		assert.Equal(t, SourceGroup, source.Kind)
	})
}

func TestReferenceSource(t *testing.T) {
	config := model.DefaultConfig()

	metaActor := newEntity("mm-actor", "business-role")
	metaNode := newEntity("mm-node", "node")
	metaView := model.NewView("Meta", model.Properties{"meta": "", "debug": "true"})
	metaView.AddChildren(model.NewElementNode(metaActor), model.NewGroup("Any", nil, model.NewElementNode(metaNode)))
	metaView.AddRelationships(model.NewRelationship(model.RelationshipTypeAssignment, metaActor, metaNode))

	plainView := model.NewView("Plain", nil)
	plainView.AddChildren(model.NewElementNode(newEntity("p", "node")))

	t.Run("Schema from referenced meta view", func(t *testing.T) {
		view := model.NewView("Main", nil)
		view.AddChildren(model.NewReferenceNode(plainView), model.NewReferenceNode(metaView))

		schema := ExtractSchema(view, config)

		require.NotNil(t, schema, "Expected a schema from the referenced view")
		assert.Len(t, schema.Entities, 2, "Expected every element of the referenced view")
		assert.Len(t, schema.Relationships, 1)
		assert.True(t, schema.Debug, "Expected debug from the referenced view property")
	})

	t.Run("Meta group takes precedence over references", func(t *testing.T) {
		view, _, _ := groupView(model.Properties{"meta": ""})
		view.AddChildren(model.NewReferenceNode(metaView))

		source, ok := NewExtractor(config, nil).FindSource(view)

		require.True(t, ok)
		assert.Equal(t, SourceGroup, source.Kind)
	})

	t.Run("Reference without view is ignored", func(t *testing.T) {
		view := model.NewView("Main", nil)
		view.AddChildren(model.NewReferenceNode(nil))

		_, ok := ReferenceSource(view, config)
		assert.False(t, ok)
	})
}

func TestExtractor(t *testing.T) {
	config := model.DefaultConfig()

	t.Run("No schema without meta group or reference", func(t *testing.T) {
		view := model.NewView("Main", nil)
		view.AddChildren(model.NewGroup("Group", nil, model.NewElementNode(newEntity("a", "node"))))

		assert.Nil(t, ExtractSchema(view, config))
	})

	t.Run("Nil view has no schema", func(t *testing.T) {
		assert.Nil(t, ExtractSchema(nil, config))
	})

	t.Run("Custom sources replace the defaults", func(t *testing.T) {
		entity := newEntity("fixed", "node")
		extractor := NewExtractor(config, nil)
		extractor.SetSources(func(view *model.View, config model.Config) (*Source, bool) {
			return &Source{Kind: SourceGroup, Name: "fixed", Entities: []*model.Entity{entity}}, true
		})

		schema := extractor.Extract(model.NewView("Empty", nil))

		require.NotNil(t, schema)
		assert.Same(t, entity, schema.Entities[0])
	})

	t.Run("Schema construction is only traced in debug mode", func(t *testing.T) {
		var messages []string
		trace := model.Tracer(func(msg string, attrs ...slog.Attr) {
			messages = append(messages, msg)
		})

		view, _, _ := groupView(model.Properties{"meta": ""})
		NewExtractor(config, trace).Extract(view)
		assert.Empty(t, messages, "Expected no trace without debug")

		debugView, _, _ := groupView(model.Properties{"meta": "", "debug": "true"})
		NewExtractor(config, trace).Extract(debugView)
		assert.Equal(t, []string{"Found schema", "Built schema graph"}, messages)
	})

	t.Run("Source kind names", func(t *testing.T) {
		assert.Equal(t, "none", SourceNone.String())
		assert.Equal(t, "group", SourceGroup.String())
		assert.Equal(t, "reference", SourceReference.String())
	})
}
