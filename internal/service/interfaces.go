package service

import (
	"context"

	"github.com/alexanderramin/groundwork/internal/cost"
	"github.com/alexanderramin/groundwork/internal/domain"
)

// PipelineConfig declares the configurable points of the generation
// pipeline. One pipeline serves all project variants; the differences
// between them live here instead of in copied code.
type PipelineConfig struct {
	// IncludePrecon prepends a pre-construction phase instruction to the
	// schedule prompt.
	IncludePrecon bool

	// WeeksSource selects the normalization strategy.
	WeeksSource domain.WeeksSource

	// RateTable supplies the cost bands. Nil uses the defaults.
	RateTable cost.RateTable
}

// GenerateResult carries everything derived from one submission. It is
// request-scoped: each call builds a fresh value that flows explicitly from
// the generator to the renderers and exporters, with no ambient session
// state in between.
type GenerateResult struct {
	Params          domain.ProjectParams
	Schedule        domain.Schedule
	Materials       []domain.MaterialsEntry
	MaterialsSource domain.MaterialsSource
	Cost            domain.CostEstimate
	Warnings        []domain.ValidationWarning
}

// GenerateService runs the prompt → completion → normalize pipeline for one
// submission.
type GenerateService interface {
	// Generate validates the params, requests and normalizes the schedule,
	// derives materials, and computes the cost estimate. A schedule parse
	// failure is fatal and returns a *schedule.ParseError with no partial
	// result; a materials failure silently falls back to the deterministic
	// classifier.
	Generate(ctx context.Context, params domain.ProjectParams, cfg PipelineConfig) (*GenerateResult, error)
}

// HistoryService saves and recalls generated schedules.
type HistoryService interface {
	Save(ctx context.Context, res *GenerateResult) (*domain.SavedSchedule, error)
	Get(ctx context.Context, id string) (*domain.SavedSchedule, error)
	List(ctx context.Context) ([]*domain.SavedSchedule, error)
	Delete(ctx context.Context, id string) error
}
