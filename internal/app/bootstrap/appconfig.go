// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and request limits. AppConfig covers the upstream job-seeker
// API and the dashboard feature.
type AppConfig struct {
	// Upstream job-seeker API
	APIBaseURL          string        // Base URL of the backend (e.g., http://localhost:8000)
	APIApplicationsPath string        // Path returning the seeker's applications
	APIStatsPath        string        // Path returning the seeker's summary statistics
	APITimeout          time.Duration // Per-request HTTP client timeout
	APIRateLimit        float64       // Upstream requests per second (0 disables limiting)
	APIRateBurst        int           // Upstream limiter burst size

	// Dashboard feature
	SeekerPathMarker    string        // Path segment the dashboard lives under (default: jobseeker)
	DashboardRateLimit  int           // Requests allowed per client per window
	DashboardRateWindow time.Duration // Window for the per-client limit
	JobsBrowseURL       string        // Job listings page linked from the sidebar (blank hides the link)
}

// DashboardBase returns the mount path of the dashboard feature ("/jobseeker").
func (c AppConfig) DashboardBase() string {
	return "/" + c.SeekerPathMarker
}
