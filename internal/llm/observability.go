package llm

import (
	"github.com/charmbracelet/log"
)

// CallEvent records metadata about a single completion call.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about completion calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes completion call events through a structured logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an Observer that logs events to the given logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.logger.Info("llm call",
			"task", event.Task, "model", event.Model, "latency_ms", event.LatencyMs)
		return
	}
	o.logger.Error("llm call failed",
		"task", event.Task, "model", event.Model,
		"latency_ms", event.LatencyMs, "error_code", event.ErrorCode)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
