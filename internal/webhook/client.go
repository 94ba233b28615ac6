package webhook

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/go-resty/resty/v2"
)

const dateLayout = "2006-01-02"

// TransportError indicates the webhook call failed or returned a
// non-success status. Reported to the user, never retried; any table
// already rendered stays visible.
type TransportError struct {
	Status int // 0 when the request never completed
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("webhook returned status %d", e.Status)
	}
	return fmt.Sprintf("webhook request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Config holds the outbound webhook settings.
type Config struct {
	URL       string
	TimeoutMs int
}

// LoadConfig reads webhook configuration from environment variables. An
// empty URL means forwarding is disabled.
func LoadConfig() Config {
	cfg := Config{TimeoutMs: 15000}
	if v := os.Getenv("GROUNDWORK_WEBHOOK_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("GROUNDWORK_WEBHOOK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}

// weekPayload is one schedule row in the outbound payload.
type weekPayload struct {
	Week      int    `json:"week"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Tasks     string `json:"tasks"`
}

// payload is the JSON object POSTed to the automation endpoint.
type payload struct {
	ProjectName string        `json:"project_name"`
	Location    string        `json:"location"`
	ProjectType string        `json:"project_type"`
	Weeks       int           `json:"weeks"`
	StartDate   string        `json:"start_date"`
	Schedule    []weekPayload `json:"schedule"`
}

// Client forwards finalized schedules to an external automation endpoint.
type Client interface {
	// Send POSTs the schedule payload. Success is exactly HTTP 200; any
	// other status or transport failure returns a *TransportError.
	Send(ctx context.Context, params domain.ProjectParams, s *domain.Schedule) error
}

type restyClient struct {
	cfg  Config
	http *resty.Client
}

// NewClient creates a webhook Client for the configured URL.
func NewClient(cfg Config) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook URL is not configured (set GROUNDWORK_WEBHOOK_URL)")
	}
	parsed, err := url.Parse(cfg.URL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid webhook URL %q", cfg.URL)
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutMs)*time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &restyClient{cfg: cfg, http: client}, nil
}

func (c *restyClient) Send(ctx context.Context, params domain.ProjectParams, s *domain.Schedule) error {
	body := payload{
		ProjectName: params.Name,
		Location:    params.Location,
		ProjectType: string(params.Type),
		Weeks:       params.Weeks,
		StartDate:   params.StartDate.Format(dateLayout),
	}
	for _, w := range s.Weeks {
		body.Schedule = append(body.Schedule, weekPayload{
			Week:      w.Week,
			StartDate: w.StartDate.Format(dateLayout),
			EndDate:   w.EndDate.Format(dateLayout),
			Tasks:     w.TaskSummary(),
		})
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.cfg.URL)
	if err != nil {
		return &TransportError{Cause: err}
	}
	if resp.StatusCode() != 200 {
		return &TransportError{Status: resp.StatusCode()}
	}
	return nil
}
