package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ScheduleTimeoutMatchesGlobalDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskSchedule))
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("GROUNDWORK_LLM_MATERIALS_TIMEOUT_MS", "12345")

	cfg := LoadConfig()
	assert.Equal(t, 12345, cfg.TaskTimeout(TaskMaterials))
	// Schedule timeout is unaffected.
	assert.Equal(t, DefaultConfig().TaskTimeout(TaskSchedule), cfg.TaskTimeout(TaskSchedule))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("GROUNDWORK_LLM_SCHEDULE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TaskTimeout(TaskSchedule), cfg.TaskTimeout(TaskSchedule))
}

func TestLoadConfig_APIKeyPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "from-openai")
	t.Setenv("GROUNDWORK_LLM_API_KEY", "from-groundwork")

	cfg := LoadConfig()
	assert.Equal(t, "from-groundwork", cfg.APIKey)
}

func TestConfig_TaskTimeout_UnknownTaskUsesGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 777
	assert.Equal(t, 777, cfg.TaskTimeout(TaskType("other")))
}
