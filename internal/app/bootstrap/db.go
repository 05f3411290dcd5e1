// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/seekerhub/internal/app/system/seekerapi"
	"github.com/dalemusser/seekerhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the upstream API client.
//
// The backend is checked once with a short ping. An unreachable backend is
// logged and does not abort startup; the dashboard renders its error row
// until the backend comes back.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	httpClient := &http.Client{Timeout: appCfg.APITimeout}

	api := seekerapi.New(seekerapi.Config{
		BaseURL:          appCfg.APIBaseURL,
		ApplicationsPath: appCfg.APIApplicationsPath,
		StatsPath:        appCfg.APIStatsPath,
		RateLimit:        appCfg.APIRateLimit,
		Burst:            appCfg.APIRateBurst,
	}, httpClient, logger)

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := api.Ping(pingCtx); err != nil {
		logger.Warn("upstream API not reachable at startup",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err))
	} else {
		logger.Info("upstream API reachable", zap.String("api_base_url", appCfg.APIBaseURL))
	}

	return DBDeps{API: api}, nil
}

// EnsureSchema sets up indexes or schema as needed.
// There is no local store, so nothing to do.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
