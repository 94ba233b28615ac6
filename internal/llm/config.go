package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskSchedule  TaskType = "schedule"
	TaskMaterials TaskType = "materials"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the completion client.
type Config struct {
	Endpoint  string
	APIKey    string
	Model     string
	TimeoutMs int
	LogCalls  bool
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The endpoint is any
// OpenAI-compatible chat completions server.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://api.openai.com",
		Model:     "gpt-4o-mini",
		TimeoutMs: 60000,
		Tasks: map[TaskType]TaskConfig{
			TaskSchedule:  {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 60000},
			TaskMaterials: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads completion client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GROUNDWORK_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GROUNDWORK_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GROUNDWORK_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GROUNDWORK_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("GROUNDWORK_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskSchedule, "GROUNDWORK_LLM_SCHEDULE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskMaterials, "GROUNDWORK_LLM_MATERIALS_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
