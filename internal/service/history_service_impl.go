package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/google/uuid"
)

type historyService struct {
	schedules repository.ScheduleRepo
	uow       db.UnitOfWork
}

// NewHistoryService creates a HistoryService over the schedule repository.
// The unit of work keeps a save atomic across the schedule, week, and
// materials tables.
func NewHistoryService(schedules repository.ScheduleRepo, uow db.UnitOfWork) HistoryService {
	return &historyService{schedules: schedules, uow: uow}
}

func (s *historyService) Save(ctx context.Context, res *GenerateResult) (*domain.SavedSchedule, error) {
	if res == nil || len(res.Schedule.Weeks) == 0 {
		return nil, fmt.Errorf("nothing to save")
	}

	saved := &domain.SavedSchedule{
		ID:        uuid.New().String(),
		Params:    res.Params,
		Schedule:  res.Schedule,
		Materials: res.Materials,
		Cost:      res.Cost,
		CreatedAt: time.Now().UTC(),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteScheduleRepo(tx).Create(ctx, saved)
	})
	if err != nil {
		return nil, fmt.Errorf("saving schedule: %w", err)
	}
	return saved, nil
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.SavedSchedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *historyService) List(ctx context.Context) ([]*domain.SavedSchedule, error) {
	return s.schedules.List(ctx)
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.schedules.Delete(ctx, id)
}
