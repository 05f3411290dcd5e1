package seekerapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/seekerhub/internal/app/system/seekerapi"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *seekerapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return seekerapi.New(seekerapi.Config{
		BaseURL:          srv.URL + "/",
		ApplicationsPath: "/api/applications/me",
		StatsPath:        "/api/applications/stats",
	}, srv.Client(), zap.NewNop())
}

func TestListApplications_DecodesRecords(t *testing.T) {
	var gotPath, gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get(seekerapi.RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"job_title":"Data Scientist","company":"Acme","status":"accepted","applied_date":"2024-03-02"}]`))
	})

	ctx := seekerapi.WithToken(context.Background(), "tok-123")
	ctx = seekerapi.WithRequestID(ctx, "req-1")

	apps, err := c.ListApplications(ctx)
	if err != nil {
		t.Fatalf("ListApplications failed: %v", err)
	}

	if gotPath != "/api/applications/me" {
		t.Errorf("path: got %q, want %q", gotPath, "/api/applications/me")
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization: got %q, want %q", gotAuth, "Bearer tok-123")
	}
	if gotReqID != "req-1" {
		t.Errorf("request id: got %q, want %q", gotReqID, "req-1")
	}
	if len(apps) != 1 {
		t.Fatalf("len: got %d, want 1", len(apps))
	}
	if apps[0].ID != "1" || apps[0].Company != "Acme" {
		t.Errorf("record: got %+v", apps[0])
	}
}

func TestListApplications_NullBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	apps, err := c.ListApplications(context.Background())
	if err != nil {
		t.Fatalf("ListApplications failed: %v", err)
	}
	if apps != nil {
		t.Errorf("expected nil slice, got %v", apps)
	}
}

func TestListApplications_NoTokenNoAuthorization(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get(seekerapi.RequestIDHeader)
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.ListApplications(context.Background()); err != nil {
		t.Fatalf("ListApplications failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization: got %q, want empty", gotAuth)
	}
	if gotReqID == "" {
		t.Error("expected a generated request id")
	}
}

func TestListApplications_StatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.ListApplications(context.Background())
	var se *seekerapi.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusBadGateway {
		t.Errorf("Code: got %d, want %d", se.Code, http.StatusBadGateway)
	}
}

func TestListApplications_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	if _, err := c.ListApplications(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestFetchStats_PartialFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/applications/stats" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"total": 4, "accepted": 1}`))
	})

	s, err := c.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats failed: %v", err)
	}
	if s.Total != 4 || s.Accepted != 1 || s.Pending != 0 || s.Rejected != 0 {
		t.Errorf("stats: got %+v", s)
	}
}

func TestPing(t *testing.T) {
	up := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	if err := up.Ping(context.Background()); err != nil {
		t.Errorf("Ping (404): expected reachable, got %v", err)
	}

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := down.Ping(context.Background()); err == nil {
		t.Error("Ping (503): expected error")
	}
}

func TestRateLimit_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := seekerapi.New(seekerapi.Config{
		BaseURL:          srv.URL,
		ApplicationsPath: "/a",
		RateLimit:        0.001,
		Burst:            1,
	}, srv.Client(), nil)

	if _, err := c.ListApplications(context.Background()); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.ListApplications(ctx); err == nil {
		t.Error("expected rate limit wait to fail on canceled context")
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/jobseeker/dashboard", nil)
	req.Header.Set("Authorization", "Bearer abc")
	if got := seekerapi.TokenFromRequest(req); got != "abc" {
		t.Errorf("header: got %q, want %q", got, "abc")
	}

	req = httptest.NewRequest("GET", "/jobseeker/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: seekerapi.AccessTokenCookie, Value: "xyz"})
	if got := seekerapi.TokenFromRequest(req); got != "xyz" {
		t.Errorf("cookie: got %q, want %q", got, "xyz")
	}

	req = httptest.NewRequest("GET", "/jobseeker/dashboard", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	if got := seekerapi.TokenFromRequest(req); got != "" {
		t.Errorf("basic auth: got %q, want empty", got)
	}
}
