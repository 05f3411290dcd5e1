// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for SeekerHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, seeker_path_marker, etc.
//   - Environment variables: SEEKERHUB_API_BASE_URL, SEEKERHUB_SEEKER_PATH_MARKER, etc.
//   - Command-line flags: --api_base_url, --seeker_path_marker, etc.
var appConfigKeys = []config.AppKey{
	// Upstream API
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Base URL of the job-seeker backend API"},
	{Name: "api_applications_path", Default: "/api/applications/me", Desc: "Path of the applications endpoint"},
	{Name: "api_stats_path", Default: "/api/applications/stats", Desc: "Path of the statistics endpoint"},
	{Name: "api_timeout", Default: "10s", Desc: "HTTP client timeout for upstream requests"},
	{Name: "api_rate_limit", Default: 20, Desc: "Upstream requests per second (0 disables limiting)"},
	{Name: "api_rate_burst", Default: 10, Desc: "Upstream limiter burst size"},

	// Dashboard
	{Name: "seeker_path_marker", Default: "jobseeker", Desc: "Path segment the job-seeker dashboard is served under"},
	{Name: "dashboard_rate_limit", Default: 60, Desc: "Dashboard requests allowed per client per window"},
	{Name: "dashboard_rate_window", Default: "1m", Desc: "Window for the per-client dashboard rate limit"},
	{Name: "jobs_browse_url", Default: "http://localhost:8000/jobs/browse", Desc: "Job listings page linked from the dashboard sidebar (blank hides the link)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SEEKERHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SEEKERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:          strings.TrimRight(appValues.String("api_base_url"), "/"),
		APIApplicationsPath: appValues.String("api_applications_path"),
		APIStatsPath:        appValues.String("api_stats_path"),
		APITimeout:          appValues.Duration("api_timeout", 10*time.Second),
		APIRateLimit:        float64(appValues.Int("api_rate_limit")),
		APIRateBurst:        appValues.Int("api_rate_burst"),

		SeekerPathMarker:    strings.TrimSpace(appValues.String("seeker_path_marker")),
		DashboardRateLimit:  appValues.Int("dashboard_rate_limit"),
		DashboardRateWindow: appValues.Duration("dashboard_rate_window", time.Minute),
		JobsBrowseURL:       strings.TrimSpace(appValues.String("jobs_browse_url")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// SeekerHub checks the upstream URL and paths and the dashboard path marker
// before any client is built.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		logger.Error("invalid upstream API base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url must be an absolute URL, got %q", appCfg.APIBaseURL)
	}

	for name, p := range map[string]string{
		"api_applications_path": appCfg.APIApplicationsPath,
		"api_stats_path":        appCfg.APIStatsPath,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%s must start with \"/\", got %q", name, p)
		}
	}

	if appCfg.SeekerPathMarker == "" || strings.Contains(appCfg.SeekerPathMarker, "/") {
		return fmt.Errorf("seeker_path_marker must be a single non-empty path segment, got %q", appCfg.SeekerPathMarker)
	}

	if appCfg.APIRateLimit < 0 || appCfg.APIRateBurst < 0 {
		return fmt.Errorf("api_rate_limit and api_rate_burst must not be negative")
	}

	if appCfg.DashboardRateLimit < 0 || appCfg.DashboardRateWindow < 0 {
		return fmt.Errorf("dashboard_rate_limit and dashboard_rate_window must not be negative")
	}

	if appCfg.JobsBrowseURL != "" && !strings.HasPrefix(appCfg.JobsBrowseURL, "/") {
		if u, err := url.Parse(appCfg.JobsBrowseURL); err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("jobs_browse_url must be an absolute URL or a path starting with \"/\", got %q", appCfg.JobsBrowseURL)
		}
	}

	return nil
}
