package graph

import "github.com/siherrmann/metamodel/model"

func entity(id string, entityType string, specialization string) *model.Entity {
	return &model.Entity{ID: id, Name: id, Type: entityType, Specialization: specialization}
}

func relationship(id string, relType model.RelationshipType, source *model.Entity, target *model.Entity) *model.Relationship {
	return &model.Relationship{ID: id, Type: relType, Source: source, Target: target}
}

func relationshipIDs(relationships []*model.Relationship) []string {
	ids := make([]string, 0, len(relationships))
	for _, rel := range relationships {
		ids = append(ids, rel.ID)
	}
	return ids
}
