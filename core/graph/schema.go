package graph

import (
	"log/slog"

	"github.com/siherrmann/metamodel/model"
)

// SchemaGraph is the read-only index over a meta-model.
// It is never mutated after BuildSchemaGraph, so it can be shared between goroutines.
type SchemaGraph struct {
	Entities      []*model.Entity
	Relationships []*model.Relationship

	EntitiesByID             map[string]*model.Entity
	EntitiesByType           map[string][]*model.Entity
	EntitiesBySpecialization map[string][]*model.Entity

	// Built from specialization relationships only.
	// An entity specializes at most one parent, the last declared wins.
	SpecializationParents  map[string]string
	SpecializationChildren map[string][]string

	// Debug enables tracing of checks against this schema
	Debug bool

	relationshipIDs map[string]struct{}
}

// BuildSchemaGraph indexes the given entities and the relationships whose
// source and target are both among them. It never fails, an empty input
// yields an empty schema.
func BuildSchemaGraph(entities []*model.Entity, relationships []*model.Relationship) *SchemaGraph {
	return BuildSchemaGraphTraced(entities, relationships, nil)
}

// BuildSchemaGraphTraced is BuildSchemaGraph reporting the result to trace
func BuildSchemaGraphTraced(entities []*model.Entity, relationships []*model.Relationship, trace model.Tracer) *SchemaGraph {
	g := &SchemaGraph{
		EntitiesByID:             make(map[string]*model.Entity),
		EntitiesByType:           make(map[string][]*model.Entity),
		EntitiesBySpecialization: make(map[string][]*model.Entity),
		SpecializationParents:    make(map[string]string),
		SpecializationChildren:   make(map[string][]string),
		relationshipIDs:          make(map[string]struct{}),
	}

	for _, entity := range entities {
		if entity == nil {
			continue
		}
		g.Entities = append(g.Entities, entity)
		g.EntitiesByID[entity.ID] = entity

		if entity.Specialization != "" {
			g.EntitiesBySpecialization[entity.Specialization] = append(g.EntitiesBySpecialization[entity.Specialization], entity)
		}
		g.EntitiesByType[entity.Type] = append(g.EntitiesByType[entity.Type], entity)
	}

	for _, rel := range relationships {
		if rel == nil || rel.Source == nil || rel.Target == nil {
			continue
		}
		_, sourceOk := g.EntitiesByID[rel.Source.ID]
		_, targetOk := g.EntitiesByID[rel.Target.ID]
		if !sourceOk || !targetOk {
			continue
		}
		g.Relationships = append(g.Relationships, rel)
		g.relationshipIDs[rel.ID] = struct{}{}

		if rel.IsSpecialization() {
			specificID := rel.Source.ID
			generalID := rel.Target.ID
			g.SpecializationChildren[generalID] = append(g.SpecializationChildren[generalID], specificID)
			g.SpecializationParents[specificID] = generalID
		}
	}

	trace.Trace("Built schema graph",
		slog.Int("entities", len(g.Entities)),
		slog.Int("relationships", len(g.Relationships)),
		slog.Int("specializations", len(g.SpecializationParents)),
	)

	return g
}

// Entity returns the schema entity with the given ID
func (g *SchemaGraph) Entity(id string) (*model.Entity, bool) {
	if g == nil {
		return nil, false
	}
	entity, ok := g.EntitiesByID[id]
	return entity, ok
}

// Parent returns the ID of the entity id specializes
func (g *SchemaGraph) Parent(id string) (string, bool) {
	if g == nil {
		return "", false
	}
	parentID, ok := g.SpecializationParents[id]
	return parentID, ok
}

// Children returns the IDs of the entities specializing id, in declaration order
func (g *SchemaGraph) Children(id string) []string {
	if g == nil {
		return nil
	}
	return g.SpecializationChildren[id]
}

// ContainsRelationship reports whether a relationship with the given ID is part of the schema
func (g *SchemaGraph) ContainsRelationship(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.relationshipIDs[id]
	return ok
}

// IsEmpty reports whether the schema has no entities
func (g *SchemaGraph) IsEmpty() bool {
	return g == nil || len(g.Entities) == 0
}
