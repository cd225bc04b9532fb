package legality

import (
	"log/slog"

	"github.com/siherrmann/metamodel/core/graph"
	"github.com/siherrmann/metamodel/model"
)

// Checker answers whether relationships are allowed by a schema.
// A Checker only reads its schema and may be used concurrently.
type Checker struct {
	schema *graph.SchemaGraph
	trace  model.Tracer
}

// NewChecker creates a checker for schema. A nil schema allows everything,
// a nil tracer disables tracing.
func NewChecker(schema *graph.SchemaGraph, trace model.Tracer) *Checker {
	return &Checker{
		schema: schema,
		trace:  trace,
	}
}

// Schema returns the schema the checker validates against
func (c *Checker) Schema() *graph.SchemaGraph {
	return c.schema
}

// FindMatches returns the schema entities entity corresponds to
func FindMatches(entity *model.Entity, schema *graph.SchemaGraph) []*model.Entity {
	if entity == nil || schema == nil {
		return nil
	}

	if entity.Specialization != "" {
		candidates := schema.EntitiesBySpecialization[entity.Specialization]
		matches := make([]*model.Entity, len(candidates))
		copy(matches, candidates)
		return matches
	}

	// An unspecialized entity only matches unspecialized schema entries
	var matches []*model.Entity
	for _, candidate := range schema.EntitiesByType[entity.Type] {
		if candidate.Specialization == "" {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// IsAllowed reports whether relationship from source to target is allowed by schema.
// Without a schema everything is allowed.
func IsAllowed(source *model.Entity, target *model.Entity, relationship *model.Relationship, schema *graph.SchemaGraph) bool {
	return NewChecker(schema, nil).IsAllowed(source, target, relationship)
}

// FindMatches returns the schema entities entity corresponds to
func (c *Checker) FindMatches(entity *model.Entity) []*model.Entity {
	return FindMatches(entity, c.schema)
}

// IsAllowed reports whether relationship from source to target is allowed.
// It first searches the relationships leaving the matched sources (inherited
// ones included) and then those entering the matched targets.
func (c *Checker) IsAllowed(source *model.Entity, target *model.Entity, relationship *model.Relationship) bool {
	if c.schema == nil {
		return true
	}

	if c.trace.Enabled() {
		c.trace.Trace("Checking relationship",
			slog.String("source", source.String()),
			slog.String("target", target.String()),
			slog.String("relationship", relationship.String()),
		)
	}

	sourceMatches := c.FindMatches(source)
	targetMatches := c.FindMatches(target)

	if c.trace.Enabled() {
		c.trace.Trace("Resolved schema matches",
			slog.Any("source_matches", entityNames(sourceMatches)),
			slog.Any("target_matches", entityNames(targetMatches)),
		)
	}

	if len(sourceMatches) == 0 || len(targetMatches) == 0 {
		c.trace.Trace("Rejected, no matching entities in schema")
		return false
	}

	if pattern := c.search(sourceMatches, targetMatches, relationship, graph.Outgoing); pattern != nil {
		c.traceAllowed(pattern, graph.Outgoing)
		return true
	}

	if pattern := c.search(targetMatches, sourceMatches, relationship, graph.Incoming); pattern != nil {
		c.traceAllowed(pattern, graph.Incoming)
		return true
	}

	c.trace.Trace("Rejected, no matching pattern in schema")
	return false
}

// search walks the relationships reachable from each of the starting entities
// in the given direction and returns the first one that ends at one of the
// opposite entities and matches the candidate.
func (c *Checker) search(start []*model.Entity, opposite []*model.Entity, candidate *model.Relationship, direction graph.Direction) *model.Relationship {
	for _, entity := range start {
		for _, pattern := range graph.CollectReachableTraced(c.schema, entity.ID, direction, c.trace) {
			endpointID := pattern.TargetID()
			if direction == graph.Incoming {
				endpointID = pattern.SourceID()
			}

			for _, other := range opposite {
				if endpointID != other.ID {
					continue
				}

				matched := Matches(candidate, pattern)
				if c.trace.Enabled() {
					c.trace.Trace("Match attempted",
						slog.String("direction", direction.String()),
						slog.String("pattern", pattern.String()),
						slog.String("pattern_source", pattern.Source.Name),
						slog.String("pattern_target", pattern.Target.Name),
						slog.Bool("matched", matched),
					)
				}
				if matched {
					return pattern
				}
			}
		}
	}
	return nil
}

func (c *Checker) traceAllowed(pattern *model.Relationship, direction graph.Direction) {
	c.trace.Trace("Allowed, matched pattern in schema",
		slog.String("pattern_id", pattern.ID),
		slog.String("direction", direction.String()),
	)
}

func entityNames(entities []*model.Entity) []string {
	names := make([]string, 0, len(entities))
	for _, entity := range entities {
		names = append(names, entity.String())
	}
	return names
}
