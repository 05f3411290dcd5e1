// internal/app/features/seekerdash/handler.go
package seekerdash

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/seekerhub/internal/app/system/seekerapi"
	"github.com/dalemusser/seekerhub/internal/app/system/timeouts"
	"github.com/dalemusser/seekerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Ctrl      *Controller
	Marker    string // path segment identifying job-seeker pages, e.g. "jobseeker"
	BrowseURL string // job listings page linked from the sidebar; empty hides the link
	Log       *zap.Logger
}

func NewHandler(ctrl *Controller, marker string, logger *zap.Logger) *Handler {
	return &Handler{
		Ctrl:   ctrl,
		Marker: marker,
		Log:    logger,
	}
}

// ShouldAutoStart reports whether path contains marker as a whole segment.
func ShouldAutoStart(path, marker string) bool {
	if marker == "" {
		return false
	}
	for _, seg := range strings.Split(path, "/") {
		if seg == marker {
			return true
		}
	}
	return false
}

type kpiVM struct {
	ID    string
	Label string
	Value template.HTML
}

type dashboardData struct {
	Title       string
	BasePath    string
	CurrentPath string
	MainClass   string
	BrowseURL   string
	AppliedJobs template.HTML
	KPIs        []kpiVM
}

func (h *Handler) newDashboardData(r *http.Request, page *Page) dashboardData {
	kpis := []kpiVM{
		{ID: KPITotalID, Label: "Total Applications"},
		{ID: KPIPendingID, Label: "Pending"},
		{ID: KPIAcceptedID, Label: "Accepted"},
		{ID: KPIRejectedID, Label: "Rejected"},
	}
	for i := range kpis {
		kpis[i].Value = page.HTML(kpis[i].ID)
		if !page.Written(kpis[i].ID) {
			kpis[i].Value = "0"
		}
	}

	return dashboardData{
		Title:       "My Dashboard",
		BasePath:    "/" + h.Marker,
		CurrentPath: httpnav.CurrentPath(r),
		MainClass:   strings.Join(page.Classes(MainID), " "),
		BrowseURL:   h.BrowseURL,
		AppliedJobs: page.HTML(AppliedJobsID),
		KPIs:        kpis,
	}
}

// upstreamContext carries the caller's token and a correlation id to the
// upstream API.
func upstreamContext(ctx context.Context, r *http.Request) context.Context {
	if tok := seekerapi.TokenFromRequest(r); tok != "" {
		ctx = seekerapi.WithToken(ctx, tok)
	}
	reqID := r.Header.Get(seekerapi.RequestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	return seekerapi.WithRequestID(ctx, reqID)
}

// ServeDashboard handles GET /<marker>/dashboard.
// An htmx request targeting the applications table loads and returns only
// the rows.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if !ShouldAutoStart(r.URL.Path, h.Marker) {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard load")
	defer cancel()
	ctx = upstreamContext(ctx, r)

	page := DashboardPage()

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == AppliedJobsID {
		h.Ctrl.LoadAppliedJobs(ctx, page)
		templates.RenderSnippet(w, "seeker_applications_rows", h.newDashboardData(r, page))
		return
	}

	h.Ctrl.Init(ctx, page)
	data := h.newDashboardData(r, page)

	h.Log.Debug("job seeker dashboard served", zap.String("path", r.URL.Path))
	templates.Render(w, r, "seeker_dashboard", data)
}

// ServeRefresh handles GET /<marker>/dashboard/refresh. It re-runs the data
// load and returns a JSON patch of the elements that were written; elements
// whose load failed silently are left out so the client keeps them.
func (h *Handler) ServeRefresh(w http.ResponseWriter, r *http.Request) {
	if !ShouldAutoStart(r.URL.Path, h.Marker) {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Page(), h.Log, "dashboard refresh")
	defer cancel()
	ctx = upstreamContext(ctx, r)

	page := DashboardPage()
	h.Ctrl.LoadDashboardData(ctx, page)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(page.Patch()); err != nil {
		h.Log.Error("encode dashboard patch failed", zap.Error(err))
	}
}

type applicationData struct {
	Title       string
	CurrentPath string
	BackURL     string
	Application models.Application
	Badge       Badge
	AppliedDate string
}

// ServeApplication handles GET /<marker>/applications/{id}, the target of
// the "View" action.
func (h *Handler) ServeApplication(w http.ResponseWriter, r *http.Request) {
	if !ShouldAutoStart(r.URL.Path, h.Marker) {
		http.NotFound(w, r)
		return
	}

	id := models.ApplicationID(chi.URLParam(r, "id"))
	if id == "" {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "application detail")
	defer cancel()
	ctx = upstreamContext(ctx, r)

	apps, err := h.Ctrl.Source.ListApplications(ctx)
	if err != nil {
		h.Log.Error("load application failed", zap.String("id", id.String()), zap.Error(err))
		http.Error(w, "Applications are unavailable right now.", http.StatusBadGateway)
		return
	}

	for _, a := range apps {
		if a.ID != id {
			continue
		}
		data := applicationData{
			Title:       a.JobTitle,
			CurrentPath: httpnav.CurrentPath(r),
			BackURL:     "/" + h.Marker + "/dashboard",
			Application: a,
			Badge:       StatusBadge(a.Status),
			AppliedDate: FormatDate(a.AppliedDate),
		}
		templates.Render(w, r, "seeker_application", data)
		return
	}

	http.NotFound(w, r)
}
