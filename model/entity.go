package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity represents a typed element (business actor, node, application component, etc.)
type Entity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"entity_type"`
	Specialization string `json:"specialization,omitempty"`
}

// NewEntity creates an entity with a generated ID
func NewEntity(name string, entityType string, specialization string) *Entity {
	return &Entity{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           entityType,
		Specialization: specialization,
	}
}

// IsSpecialized reports whether the entity carries a specialization name
func (e *Entity) IsSpecialized() bool {
	return e != nil && e.Specialization != ""
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	spec := e.Specialization
	if spec == "" {
		spec = "none"
	}
	return fmt.Sprintf("%s (type: %s, spec: %s)", e.Name, e.Type, spec)
}
