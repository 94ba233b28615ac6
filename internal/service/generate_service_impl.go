package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/groundwork/internal/cost"
	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/llm"
	"github.com/alexanderramin/groundwork/internal/materials"
	"github.com/alexanderramin/groundwork/internal/schedule"
)

type generateService struct {
	client    llm.Client
	materials materials.Service
	observer  UseCaseObserver
}

// NewGenerateService creates the generation pipeline service.
func NewGenerateService(client llm.Client, mats materials.Service, observers ...UseCaseObserver) GenerateService {
	return &generateService{
		client:    client,
		materials: mats,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *generateService) Generate(ctx context.Context, params domain.ProjectParams, cfg PipelineConfig) (*GenerateResult, error) {
	started := time.Now()
	res, err := s.generate(ctx, params, cfg)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "generate_schedule",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"project_type": string(params.Type),
			"weeks":        params.Weeks,
		},
	})
	return res, err
}

func (s *generateService) generate(ctx context.Context, params domain.ProjectParams, cfg PipelineConfig) (*GenerateResult, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project params: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskSchedule,
		Prompt: schedule.BuildPrompt(params, cfg.IncludePrecon),
	})
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	sched, err := schedule.Normalize(resp.Text, schedule.NormalizeConfig{
		Source:    cfg.WeeksSource,
		Weeks:     params.Weeks,
		StartDate: params.StartDate,
	})
	if err != nil {
		// Fatal: the submission is discarded, nothing partial survives.
		return nil, err
	}

	matRes := s.materials.Derive(ctx, sched.AllTasks())

	table := cfg.RateTable
	if table == nil {
		table = cost.DefaultRateTable()
	}

	return &GenerateResult{
		Params:          params,
		Schedule:        *sched,
		Materials:       matRes.Entries,
		MaterialsSource: matRes.Source,
		Cost:            cost.Estimate(table, params),
	}, nil
}
