package label

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/converters"
	"github.com/thenoetrevino/todolist/internal/database"
	"github.com/thenoetrevino/todolist/internal/models"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether color is a #RRGGBB hex color
func ValidColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// Service defines all label-related business operations
type Service interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name  string
	Color string // Hex color like #FF5733
}

// service implements Service interface
type service struct {
	labels database.LabelStore
	now    func() time.Time
}

// NewService creates a new label service. A nil clock defaults to time.Now.
func NewService(labels database.LabelStore, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{labels: labels, now: now}
}

// GetAllLabels retrieves all labels in creation order
func (s *service) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	records, err := s.labels.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converters.LabelsToModels(records), nil
}

// CreateLabel creates a new label. Name and color must both be unused.
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	// Validate request
	if err := validateCreateLabel(req); err != nil {
		return nil, err
	}

	// Name is checked before color so a label clashing on both reports the name
	if err := s.ensureFree(ctx, s.labels.FindByName, req.Name, ErrLabelNameExists); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, s.labels.FindByColor, req.Color, ErrLabelColorExists); err != nil {
		return nil, err
	}

	label := &models.Label{
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: s.now().UTC(),
	}

	saved, err := s.labels.Save(ctx, converters.LabelToRecord(label))
	if err != nil {
		return nil, translateSaveError(err)
	}

	return converters.LabelToModel(saved), nil
}

// validateCreateLabel validates a CreateLabelRequest
func validateCreateLabel(req CreateLabelRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if len(req.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !ValidColor(req.Color) {
		return ErrInvalidColor
	}
	return nil
}

func (s *service) ensureFree(
	ctx context.Context,
	find func(context.Context, string) (database.LabelRecord, error),
	value string,
	taken error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %q", taken, value)
	case errors.Is(err, models.ErrNotFound):
		return nil
	default:
		return err
	}
}

// translateSaveError maps a unique index violation to the matching label error
func translateSaveError(err error) error {
	var constraintErr *database.ConstraintError
	if !errors.As(err, &constraintErr) {
		return err
	}
	switch constraintErr.Column {
	case "name":
		return fmt.Errorf("%w: %v", ErrLabelNameExists, err)
	case "color":
		return fmt.Errorf("%w: %v", ErrLabelColorExists, err)
	}
	return err
}
