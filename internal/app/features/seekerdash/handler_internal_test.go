package seekerdash

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestNewDashboardData_BrowseURL(t *testing.T) {
	h := NewHandler(nil, "jobseeker", zap.NewNop())
	req := httptest.NewRequest("GET", "/jobseeker/dashboard", nil)

	if got := h.newDashboardData(req, DashboardPage()).BrowseURL; got != "" {
		t.Errorf("BrowseURL without config: got %q, want empty", got)
	}

	h.BrowseURL = "https://jobs.example.com/browse"
	data := h.newDashboardData(req, DashboardPage())
	if data.BrowseURL != h.BrowseURL {
		t.Errorf("BrowseURL: got %q, want %q", data.BrowseURL, h.BrowseURL)
	}
	if data.BasePath != "/jobseeker" {
		t.Errorf("BasePath: got %q, want %q", data.BasePath, "/jobseeker")
	}
	for _, k := range data.KPIs {
		if k.Value != "0" {
			t.Errorf("%s: got %q, want %q", k.ID, k.Value, "0")
		}
	}
}
