package legality

import "github.com/siherrmann/metamodel/model"

// Matches reports whether candidate fits the schema relationship pattern.
// A specialized pattern requires the exact same specialization and ignores the type.
// Otherwise aggregation and composition are interchangeable and every other
// type must be equal.
func Matches(candidate *model.Relationship, pattern *model.Relationship) bool {
	if candidate == nil || pattern == nil {
		return false
	}

	if pattern.Specialization != "" {
		return candidate.Specialization == pattern.Specialization
	}

	if pattern.Type.IsStructural() && candidate.Type.IsStructural() {
		return true
	}

	return candidate.Type == pattern.Type
}
