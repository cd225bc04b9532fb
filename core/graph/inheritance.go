package graph

import (
	"log/slog"

	"github.com/siherrmann/metamodel/model"
)

// Direction selects which endpoint of a schema relationship is matched
type Direction int

const (
	// Outgoing collects relationships whose source is the visited entity
	Outgoing Direction = iota
	// Incoming collects relationships whose target is the visited entity
	Incoming
)

func (d Direction) String() string {
	if d == Incoming {
		return "incoming"
	}
	return "outgoing"
}

// CollectReachable returns the non-specialization relationships declared on
// entityID and, following the specialization parent chain, on its ancestors.
// Relationships of the entity itself come first, then those of each ancestor,
// each in schema order. A revisited ID ends the walk.
func CollectReachable(g *SchemaGraph, entityID string, direction Direction) []*model.Relationship {
	return CollectReachableTraced(g, entityID, direction, nil)
}

// CollectReachableTraced is CollectReachable reporting every hop to trace
func CollectReachableTraced(g *SchemaGraph, entityID string, direction Direction, trace model.Tracer) []*model.Relationship {
	if g == nil {
		return nil
	}

	visited := make(map[string]bool)
	var results []*model.Relationship

	collectRecursive(g, entityID, direction, 0, visited, &results, trace)

	trace.Trace("Collected reachable relationships",
		slog.String("entity_id", entityID),
		slog.String("direction", direction.String()),
		slog.Int("count", len(results)),
	)

	return results
}

// collectRecursive is the recursive helper for CollectReachable
func collectRecursive(
	g *SchemaGraph,
	current string,
	direction Direction,
	depth int,
	visited map[string]bool,
	results *[]*model.Relationship,
	trace model.Tracer,
) {
	if visited[current] {
		trace.Trace("Specialization cycle, stopping", slog.String("entity_id", current), slog.Int("depth", depth))
		return
	}
	visited[current] = true

	for _, rel := range g.Relationships {
		if rel.IsSpecialization() {
			continue
		}

		var endpointID string
		if direction == Outgoing {
			endpointID = rel.SourceID()
		} else {
			endpointID = rel.TargetID()
		}
		if endpointID == current {
			*results = append(*results, rel)
		}
	}

	parentID, ok := g.Parent(current)
	if !ok {
		return
	}

	if trace.Enabled() {
		parentName := parentID
		if parent, found := g.Entity(parentID); found {
			parentName = parent.Name
		}
		trace.Trace("Inheriting relationships", slog.String("entity_id", current), slog.String("parent", parentName), slog.Int("depth", depth+1))
	}

	collectRecursive(g, parentID, direction, depth+1, visited, results, trace)
}

// Ancestors returns the specialization parent chain of entityID, nearest first.
// The walk stops at the first repeated ID.
func Ancestors(g *SchemaGraph, entityID string) []string {
	visited := map[string]bool{entityID: true}
	var ancestors []string

	current := entityID
	for {
		parentID, ok := g.Parent(current)
		if !ok || visited[parentID] {
			return ancestors
		}
		visited[parentID] = true
		ancestors = append(ancestors, parentID)
		current = parentID
	}
}
