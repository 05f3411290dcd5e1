// internal/app/features/seekerdash/routes.go
package seekerdash

import (
	"net/http"

	"github.com/dalemusser/seekerhub/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
)

// Routes wires the job-seeker dashboard under the marker mount point
// (e.g., "/jobseeker"). A nil limiter disables per-client throttling.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/"+h.Marker+"/dashboard", http.StatusSeeOther)
	})

	r.Group(func(pr chi.Router) {
		if limiter != nil {
			pr.Use(limiter.Middleware(h.Log))
		}
		pr.Get("/dashboard", h.ServeDashboard)
		pr.Get("/dashboard/refresh", h.ServeRefresh)
		pr.Get("/applications/{id}", h.ServeApplication)
	})

	return r
}
