package converters

import (
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	"github.com/thenoetrevino/todolist/internal/types"
)

// TaskListToModel converts a database.TaskListRecord to models.TaskList
func TaskListToModel(l database.TaskListRecord) *models.TaskList {
	return &models.TaskList{
		ID:        types.TaskListID(l.ID),
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}

// TaskListsToModels converts a slice of task list records
func TaskListsToModels(lists []database.TaskListRecord) []*models.TaskList {
	result := make([]*models.TaskList, len(lists))
	for i, l := range lists {
		result[i] = TaskListToModel(l)
	}
	return result
}
