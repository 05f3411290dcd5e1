// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/seekerhub/internal/app/features/health"
	seekerdashfeature "github.com/dalemusser/seekerhub/internal/app/features/seekerdash"
	"github.com/dalemusser/seekerhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the upstream client, and the Startup
// hook are ready. SeekerHub boots the template engine, exposes /health and the
// static assets, and mounts the job-seeker dashboard under its path marker.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	base := appCfg.DashboardBase()

	ctrl := seekerdashfeature.NewController(deps.API, base+"/applications", logger)
	dashHandler := seekerdashfeature.NewHandler(ctrl, appCfg.SeekerPathMarker, logger)
	dashHandler.BrowseURL = appCfg.JobsBrowseURL

	var limiter *ratelimit.Limiter
	if appCfg.DashboardRateLimit > 0 && appCfg.DashboardRateWindow > 0 {
		limiter = ratelimit.New(appCfg.DashboardRateLimit, appCfg.DashboardRateWindow)
	}
	r.Mount(base, seekerdashfeature.Routes(dashHandler, limiter))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/dashboard", http.StatusSeeOther)
	})

	return r, nil
}
