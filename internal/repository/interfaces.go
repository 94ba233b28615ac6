package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/groundwork/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ScheduleRepo persists generated schedules to the history store.
type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.SavedSchedule) error
	GetByID(ctx context.Context, id string) (*domain.SavedSchedule, error)
	List(ctx context.Context) ([]*domain.SavedSchedule, error)
	Delete(ctx context.Context, id string) error
}
