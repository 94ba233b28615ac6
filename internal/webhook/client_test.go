package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() domain.ProjectParams {
	return domain.ProjectParams{
		Name:          "Maple Street Duplex",
		Location:      "Portland, OR",
		Type:          domain.TypeResidential,
		SquareFootage: 2400,
		Stories:       2,
		Weeks:         2,
		StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func testSchedule() *domain.Schedule {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Schedule{Weeks: []domain.WeekEntry{
		{Week: 1, StartDate: start, EndDate: start.AddDate(0, 0, 6), Tasks: []string{"Excavation", "Grading"}},
		{Week: 2, StartDate: start.AddDate(0, 0, 7), EndDate: start.AddDate(0, 0, 13), Tasks: []string{"Foundation"}},
	}}
}

func TestClient_Send_Success(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, TimeoutMs: 5000})
	require.NoError(t, err)

	require.NoError(t, client.Send(context.Background(), testParams(), testSchedule()))

	assert.Equal(t, "Maple Street Duplex", got.ProjectName)
	assert.Equal(t, "Portland, OR", got.Location)
	assert.Equal(t, "residential", got.ProjectType)
	assert.Equal(t, 2, got.Weeks)
	assert.Equal(t, "2026-03-02", got.StartDate)
	require.Len(t, got.Schedule, 2)
	assert.Equal(t, 1, got.Schedule[0].Week)
	assert.Equal(t, "Excavation; Grading", got.Schedule[0].Tasks)
	assert.Equal(t, "2026-03-08", got.Schedule[0].EndDate)
}

func TestClient_Send_NonSuccessStatus(t *testing.T) {
	// Anything other than 200 is a failure, including other 2xx codes.
	for _, status := range []int{http.StatusAccepted, http.StatusBadRequest, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client, err := NewClient(Config{URL: srv.URL, TimeoutMs: 5000})
		require.NoError(t, err)

		err = client.Send(context.Background(), testParams(), testSchedule())
		var terr *TransportError
		require.ErrorAs(t, err, &terr, "status %d", status)
		assert.Equal(t, status, terr.Status)

		srv.Close()
	}
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	client, err := NewClient(Config{URL: "http://127.0.0.1:1", TimeoutMs: 1000})
	require.NoError(t, err)

	err = client.Send(context.Background(), testParams(), testSchedule())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}

func TestClient_Send_NoRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL, TimeoutMs: 5000})
	require.NoError(t, err)

	require.Error(t, client.Send(context.Background(), testParams(), testSchedule()))
	assert.Equal(t, 1, calls)
}

func TestNewClient_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "ftp://example.com/hook"} {
		_, err := NewClient(Config{URL: bad, TimeoutMs: 1000})
		assert.Error(t, err, "url %q", bad)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GROUNDWORK_WEBHOOK_URL", "")
	cfg := LoadConfig()
	assert.Empty(t, cfg.URL)
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("GROUNDWORK_WEBHOOK_URL", "https://hooks.example.com/x")
	t.Setenv("GROUNDWORK_WEBHOOK_TIMEOUT_MS", "2500")
	cfg := LoadConfig()
	assert.Equal(t, "https://hooks.example.com/x", cfg.URL)
	assert.Equal(t, 2500, cfg.TimeoutMs)
}
