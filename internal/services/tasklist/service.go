package tasklist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/converters"
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
	"github.com/thenoetrevino/todolist/internal/types"
)

// Service defines task list operations
type Service interface {
	CreateTaskList(ctx context.Context, name string) (*models.TaskList, error)
	GetAllTaskLists(ctx context.Context) ([]*models.TaskList, error)
	GetTaskListByID(ctx context.Context, id types.TaskListID) (*models.TaskList, error)
}

type service struct {
	lists database.TaskListStore
	now   func() time.Time
}

// NewService creates a new task list service. A nil clock defaults to time.Now.
func NewService(lists database.TaskListStore, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{lists: lists, now: now}
}

func (s *service) CreateTaskList(ctx context.Context, name string) (*models.TaskList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	rec, err := s.lists.Create(ctx, name, s.now())
	if err != nil {
		return nil, err
	}
	return converters.TaskListToModel(rec), nil
}

func (s *service) GetAllTaskLists(ctx context.Context) ([]*models.TaskList, error) {
	records, err := s.lists.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converters.TaskListsToModels(records), nil
}

func (s *service) GetTaskListByID(ctx context.Context, id types.TaskListID) (*models.TaskList, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskListID
	}
	rec, err := s.lists.FindByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTaskListNotFound, id)
		}
		return nil, err
	}
	return converters.TaskListToModel(rec), nil
}
