package converters

import (
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	"github.com/thenoetrevino/todolist/internal/types"
)

// LabelToModel converts a database.LabelRecord to models.Label
func LabelToModel(l database.LabelRecord) *models.Label {
	return &models.Label{
		ID:        types.LabelID(l.ID),
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
	}
}

// LabelsToModels converts a slice of database.LabelRecord to a slice of models.Label
func LabelsToModels(labels []database.LabelRecord) []*models.Label {
	result := make([]*models.Label, len(labels))
	for i, l := range labels {
		result[i] = LabelToModel(l)
	}
	return result
}

// LabelToRecord converts a models.Label to its persisted shape
func LabelToRecord(l *models.Label) database.LabelRecord {
	return database.LabelRecord{
		ID:        int64(l.ID),
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
	}
}
