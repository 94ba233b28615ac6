package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHistoryService(t *testing.T) HistoryService {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewHistoryService(
		repository.NewSQLiteScheduleRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)
}

func generatedResult() *GenerateResult {
	start := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	return &GenerateResult{
		Params: domain.ProjectParams{
			Name:          "Harbor View Remodel",
			Location:      "Tacoma, WA",
			Type:          domain.TypeRenovation,
			SquareFootage: 1200,
			Stories:       1,
			Weeks:         2,
			StartDate:     start,
		},
		Schedule: domain.Schedule{Weeks: []domain.WeekEntry{
			{Week: 1, StartDate: start, EndDate: start.AddDate(0, 0, 6), Tasks: []string{"Demolition"}},
			{Week: 2, StartDate: start.AddDate(0, 0, 7), EndDate: start.AddDate(0, 0, 13), Tasks: []string{"Framing", "Rough electrical"}},
		}},
		Materials: []domain.MaterialsEntry{
			{Task: "Demolition", Materials: []string{"Dumpster rental", "Demo tools"}},
		},
		MaterialsSource: domain.MaterialsFromFallback,
		Cost:            domain.CostEstimate{Low: 96000, High: 180000},
	}
}

func TestHistoryService_SaveAssignsIDAndTimestamp(t *testing.T) {
	svc := testHistoryService(t)

	saved, err := svc.Save(context.Background(), generatedResult())
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, saved.CreatedAt.Location())
}

func TestHistoryService_SaveThenGetRoundTrip(t *testing.T) {
	svc := testHistoryService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, generatedResult())
	require.NoError(t, err)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "Harbor View Remodel", got.Params.Name)
	assert.Equal(t, domain.TypeRenovation, got.Params.Type)
	require.Len(t, got.Schedule.Weeks, 2)
	assert.Equal(t, []string{"Framing", "Rough electrical"}, got.Schedule.Weeks[1].Tasks)
	require.Len(t, got.Materials, 1)
	assert.Equal(t, int64(96000), got.Cost.Low)
}

func TestHistoryService_SaveRejectsEmptyResult(t *testing.T) {
	svc := testHistoryService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, nil)
	assert.Error(t, err)

	_, err = svc.Save(ctx, &GenerateResult{})
	assert.Error(t, err)
}

func TestHistoryService_ListAndDelete(t *testing.T) {
	svc := testHistoryService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, generatedResult())
	require.NoError(t, err)
	_, err = svc.Save(ctx, generatedResult())
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, first.ID))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHistoryService_SaveRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScheduleRepo(database)

	// Fail on the second write, after the schedule header row went in.
	svc := NewHistoryService(repo, &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    errors.New("disk full"),
	})

	ctx := context.Background()
	_, err := svc.Save(ctx, generatedResult())
	require.Error(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "partial save must not survive")
}
