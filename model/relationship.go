package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RelationshipType represents the kind of a directed relationship between entities
type RelationshipType string

const (
	RelationshipTypeComposition    RelationshipType = "composition-relationship"
	RelationshipTypeAggregation    RelationshipType = "aggregation-relationship"
	RelationshipTypeAssignment     RelationshipType = "assignment-relationship"
	RelationshipTypeRealization    RelationshipType = "realization-relationship"
	RelationshipTypeServing        RelationshipType = "serving-relationship"
	RelationshipTypeAccess         RelationshipType = "access-relationship"
	RelationshipTypeInfluence      RelationshipType = "influence-relationship"
	RelationshipTypeTriggering     RelationshipType = "triggering-relationship"
	RelationshipTypeFlow           RelationshipType = "flow-relationship"
	RelationshipTypeSpecialization RelationshipType = "specialization-relationship"
	RelationshipTypeAssociation    RelationshipType = "association-relationship"
)

const relationshipTypeSuffix = "-relationship"

// RelationshipTypes lists every supported relationship kind
var RelationshipTypes = []RelationshipType{
	RelationshipTypeComposition,
	RelationshipTypeAggregation,
	RelationshipTypeAssignment,
	RelationshipTypeRealization,
	RelationshipTypeServing,
	RelationshipTypeAccess,
	RelationshipTypeInfluence,
	RelationshipTypeTriggering,
	RelationshipTypeFlow,
	RelationshipTypeSpecialization,
	RelationshipTypeAssociation,
}

// ParseRelationshipType accepts both the full kind ("flow-relationship")
// and its short form ("flow"), case-insensitively.
func ParseRelationshipType(s string) (RelationshipType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasSuffix(name, relationshipTypeSuffix) {
		name += relationshipTypeSuffix
	}
	for _, t := range RelationshipTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown relationship type %q", s)
}

// IsStructural reports whether the type is aggregation or composition
func (t RelationshipType) IsStructural() bool {
	return t == RelationshipTypeAggregation || t == RelationshipTypeComposition
}

// Relationship represents a typed, directed edge between two entities.
// Source and Target are references, the relationship does not own them.
type Relationship struct {
	ID             string           `json:"id"`
	Name           string           `json:"name,omitempty"`
	Type           RelationshipType `json:"relationship_type"`
	Specialization string           `json:"specialization,omitempty"`
	Source         *Entity          `json:"source"`
	Target         *Entity          `json:"target"`
}

// NewRelationship creates a relationship with a generated ID
func NewRelationship(relType RelationshipType, source *Entity, target *Entity) *Relationship {
	return &Relationship{
		ID:     uuid.NewString(),
		Type:   relType,
		Source: source,
		Target: target,
	}
}

// SourceID returns the source entity ID or an empty string
func (r *Relationship) SourceID() string {
	if r == nil || r.Source == nil {
		return ""
	}
	return r.Source.ID
}

// TargetID returns the target entity ID or an empty string
func (r *Relationship) TargetID() string {
	if r == nil || r.Target == nil {
		return ""
	}
	return r.Target.ID
}

// IsSpecialization reports whether the relationship is an "is-a" edge
func (r *Relationship) IsSpecialization() bool {
	return r != nil && r.Type == RelationshipTypeSpecialization
}

func (r *Relationship) String() string {
	if r == nil {
		return "<nil>"
	}
	s := string(r.Type)
	if r.Specialization != "" {
		s += " (spec: " + r.Specialization + ")"
	}
	return s
}
