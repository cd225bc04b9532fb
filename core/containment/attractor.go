package containment

import (
	"log/slog"

	"github.com/siherrmann/metamodel/model"
)

// Attractors returns the typed nodes nested in every group of view that carries
// the attractor property. A group whose value equals the recursive value
// contributes all typed descendants, any other value only its direct children.
// Results are concatenated in group order without removing duplicates.
func Attractors(view *model.View, config model.Config, trace model.Tracer) []*model.Node {
	var attractors []*model.Node

	for _, group := range view.NodesOfKind(model.NodeKindGroup) {
		value, ok := group.Property(config.AttractorProperty)
		if !ok {
			continue
		}

		var nodes []*model.Node
		if value == config.RecursiveValue {
			nodes = CollectRecursive(group, (*model.Node).VisualChildren, (*model.Node).IsTyped)
		} else {
			nodes = CollectDirect(group, (*model.Node).VisualChildren, (*model.Node).IsTyped)
		}

		trace.Trace("Collected attractor group",
			slog.String("group", group.Name),
			slog.String("value", value),
			slog.Bool("recursive", value == config.RecursiveValue),
			slog.Int("count", len(nodes)),
		)

		attractors = append(attractors, nodes...)
	}

	return attractors
}

// AttractorConcepts returns the concepts of the given nodes, skipping untyped ones
func AttractorConcepts(nodes []*model.Node) []*model.Entity {
	concepts := make([]*model.Entity, 0, len(nodes))
	for _, node := range nodes {
		if concept, ok := node.Concept(); ok {
			concepts = append(concepts, concept)
		}
	}
	return concepts
}
