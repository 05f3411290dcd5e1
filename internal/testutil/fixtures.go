package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dalemusser/seekerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Upstream paths served by NewUpstream.
const (
	ApplicationsPath = "/api/applications/me"
	StatsPath        = "/api/applications/stats"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SampleApplications returns three applications covering the common statuses.
func SampleApplications() []models.Application {
	return []models.Application{
		{ID: "1", JobTitle: "Backend Engineer", Company: "Acme", Status: models.StatusPending, AppliedDate: "2024-01-05"},
		{ID: "2", JobTitle: "Data Analyst", Company: "Globex", Status: models.StatusAccepted, AppliedDate: "2024-02-10T09:30:00"},
		{ID: "3", JobTitle: "SRE", Company: "Initech", Status: models.StatusRejected, AppliedDate: "2024-03-15T12:00:00Z"},
	}
}

// SampleStats returns counters matching SampleApplications.
func SampleStats() models.Stats {
	return models.Stats{Total: 3, Pending: 1, Accepted: 1, Rejected: 1}
}

// Upstream is a fake job-seeker backend for tests.
type Upstream struct {
	*httptest.Server

	mu           sync.Mutex
	applications any
	stats        any
	appsStatus   int
	statsStatus  int
	lastAuth     string

	hits atomic.Int64
}

// NewUpstream starts a fake backend serving SampleApplications and SampleStats.
// The server is closed when the test ends.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		applications: SampleApplications(),
		stats:        SampleStats(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(ApplicationsPath, func(w http.ResponseWriter, r *http.Request) {
		u.serve(w, r, func() (any, int) { return u.applications, u.appsStatus })
	})
	mux.HandleFunc(StatsPath, func(w http.ResponseWriter, r *http.Request) {
		u.serve(w, r, func() (any, int) { return u.stats, u.statsStatus })
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	u.Server = httptest.NewServer(mux)
	t.Cleanup(u.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request, pick func() (any, int)) {
	u.hits.Add(1)

	u.mu.Lock()
	u.lastAuth = r.Header.Get("Authorization")
	body, status := pick()
	u.mu.Unlock()

	if status != 0 && status != http.StatusOK {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// SetApplications replaces the applications payload. Pass nil to serve JSON null.
func (u *Upstream) SetApplications(apps []models.Application) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.applications = apps
}

// SetStats replaces the stats payload with any JSON-encodable value,
// so tests can send partial objects.
func (u *Upstream) SetStats(v any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.stats = v
}

// FailApplications makes the applications endpoint answer with status.
func (u *Upstream) FailApplications(status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.appsStatus = status
}

// FailStats makes the stats endpoint answer with status.
func (u *Upstream) FailStats(status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.statsStatus = status
}

// Hits returns how many data requests the fake has served.
func (u *Upstream) Hits() int64 {
	return u.hits.Load()
}

// LastAuthorization returns the Authorization header of the latest data request.
func (u *Upstream) LastAuthorization() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastAuth
}
