package materials

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/alexanderramin/groundwork/internal/llm"
)

// Result is a materials table plus a record of where it came from.
type Result struct {
	Entries []domain.MaterialsEntry
	Source  domain.MaterialsSource
}

// Service derives a task→materials table for a normalized schedule.
type Service interface {
	// Derive issues a materials completion call for the given task list and
	// falls back to the deterministic classifier when the call fails, the
	// response does not parse, or it contains no usable entries. Derive
	// never returns an empty table for a non-empty task list.
	Derive(ctx context.Context, tasks []string) *Result
}

type service struct {
	client llm.Client
}

// NewService creates a materials Service backed by a completion client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

// materialsPayload is one element of the JSON array the model is asked to emit.
type materialsPayload struct {
	Task      string   `json:"task"`
	Materials []string `json:"materials"`
}

func (s *service) Derive(ctx context.Context, tasks []string) *Result {
	if len(tasks) == 0 {
		return &Result{Source: domain.MaterialsFromFallback}
	}

	entries, err := s.fromModel(ctx, tasks)
	if err != nil || len(entries) == 0 {
		return &Result{
			Entries: Classify(tasks),
			Source:  domain.MaterialsFromFallback,
		}
	}

	return &Result{Entries: entries, Source: domain.MaterialsFromModel}
}

func (s *service) fromModel(ctx context.Context, tasks []string) ([]domain.MaterialsEntry, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskMaterials,
		Prompt: BuildPrompt(tasks),
	})
	if err != nil {
		return nil, fmt.Errorf("materials generation failed: %w", err)
	}

	payloads, err := llm.DecodeArray[materialsPayload](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding materials response: %w", err)
	}

	known := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		known[task] = true
	}

	var entries []domain.MaterialsEntry
	for _, p := range payloads {
		task := strings.TrimSpace(p.Task)
		// Drop entries for tasks the schedule never emitted.
		if task == "" || !known[task] {
			continue
		}
		mats := trimNonEmpty(p.Materials)
		if len(mats) == 0 {
			// The model returned nothing for this task; classify it so the
			// entry is still non-empty.
			mats = ClassifyTask(task)
		}
		entries = append(entries, domain.MaterialsEntry{Task: task, Materials: mats})
	}
	return entries, nil
}

func trimNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
