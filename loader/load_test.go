package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/siherrmann/metamodel/helper"
	"github.com/siherrmann/metamodel/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	diagram, err := LoadFile("testdata/diagram.yaml")
	require.NoError(t, err, "Expected diagram to load")

	t.Run("Loads elements and generates missing IDs", func(t *testing.T) {
		require.Len(t, diagram.Elements, 5)
		operator := diagram.Elements[3]
		assert.Equal(t, "Operator", operator.Name)
		assert.NotEmpty(t, operator.ID, "Expected a generated ID")
		assert.Equal(t, "System", diagram.Elements[4].Specialization)
	})

	t.Run("Resolves relationship endpoints by ID or name", func(t *testing.T) {
		require.Len(t, diagram.Relationships, 3)

		assign := diagram.Relationships[1]
		assert.Equal(t, model.RelationshipTypeAssignment, assign.Type)
		assert.Equal(t, "mm-actor", assign.SourceID(), "Expected source resolved by name")
		assert.Equal(t, "mm-node", assign.TargetID())

		flow := diagram.Relationships[2]
		assert.Equal(t, model.RelationshipTypeFlow, flow.Type, "Expected short type to be expanded")
		assert.Equal(t, "Payment", flow.Specialization)
		assert.Same(t, diagram.Elements[3], flow.Source)
	})

	t.Run("Builds nested nodes", func(t *testing.T) {
		main, err := diagram.View("main")
		require.NoError(t, err)
		require.Len(t, main.Children, 2)

		reference := main.Children[0]
		assert.Equal(t, model.NodeKindReference, reference.Kind)
		require.NotNil(t, reference.RefView(), "Expected forward reference to be resolved")
		assert.Equal(t, "meta", reference.RefView().ID)

		group := main.Children[1]
		value, ok := group.Property("Kernelement")
		assert.True(t, ok)
		assert.Equal(t, "recursive", value)
		require.Len(t, group.Children, 2)
		assert.True(t, group.Children[0].IsTyped())
		assert.Len(t, group.Children[0].Children, 1)
		assert.Equal(t, model.NodeKindNote, group.Children[1].Kind)

		require.Len(t, main.Relationships, 1)
		assert.Equal(t, "pays", main.Relationships[0].Name)
	})

	t.Run("Keeps empty properties present", func(t *testing.T) {
		meta, err := diagram.View("Meta-Model")
		require.NoError(t, err, "Expected view lookup by name")

		value, ok := meta.Property("meta")
		assert.True(t, ok, "Expected empty meta property to be present")
		assert.Empty(t, value)
		assert.Len(t, meta.Elements(), 3)
	})

	t.Run("Unknown view lookup", func(t *testing.T) {
		_, err := diagram.View("missing")
		assert.ErrorIs(t, err, ErrUnknownView)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "Unknown relationship source",
			yaml: `
elements: [{id: a, type: node}]
relationships: [{type: flow, source: missing, target: a}]`,
			want: ErrUnknownElement,
		},
		{
			name: "Unknown element node",
			yaml: `
views: [{name: V, nodes: [{element: missing}]}]`,
			want: ErrUnknownElement,
		},
		{
			name: "Unknown referenced view",
			yaml: `
views: [{name: V, nodes: [{reference: missing}]}]`,
			want: ErrUnknownView,
		},
		{
			name: "Unknown drawn relationship",
			yaml: `
views: [{name: V, relationships: [missing]}]`,
			want: ErrUnknownRelationship,
		},
		{
			name: "Node with two kinds",
			yaml: `
elements: [{id: a, type: node}]
views: [{name: V, nodes: [{group: G, element: a}]}]`,
			want: ErrInvalidNode,
		},
		{
			name: "Nested node without kind",
			yaml: `
views: [{name: V, nodes: [{group: G, children: [{properties: {x: y}}]}]}]`,
			want: ErrInvalidNode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load([]byte(test.yaml))

			require.Error(t, err, "Expected load to fail")
			assert.ErrorIs(t, err, test.want)

			var wrapped *helper.Error
			assert.True(t, errors.As(err, &wrapped), "Expected error to be wrapped with its operation")
		})
	}

	t.Run("Unknown relationship type", func(t *testing.T) {
		_, err := Load([]byte(`
elements: [{id: a, type: node}]
relationships: [{type: friendship, source: a, target: a}]`))

		assert.ErrorContains(t, err, "unknown relationship type")
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		_, err := Load([]byte(`elements: [{id: a, colour: red}]`))

		assert.Error(t, err, "Expected strict decoding")
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := Load([]byte("elements: [unclosed"))

		assert.Error(t, err)
	})

	t.Run("Empty input yields an empty diagram", func(t *testing.T) {
		diagram, err := Load(nil)

		require.NoError(t, err)
		assert.Empty(t, diagram.Views)
	})

	t.Run("LoadReader reads the same format", func(t *testing.T) {
		diagram, err := LoadReader(strings.NewReader(`
elements: [{id: a, name: A, type: node}]
views: [{name: V, nodes: [{element: A}]}]`))

		require.NoError(t, err)
		require.Len(t, diagram.Views, 1)
		assert.Len(t, diagram.Views[0].Elements(), 1)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/missing.yaml")

		assert.Error(t, err)
	})
}
