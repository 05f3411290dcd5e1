// internal/app/features/seekerdash/controller.go
package seekerdash

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dalemusser/seekerhub/internal/domain/models"
	"github.com/sourcegraph/conc"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Source is the upstream data the dashboard renders.
type Source interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
	FetchStats(ctx context.Context) (models.Stats, error)
}

// Chrome is the base dashboard (sidebar, user menu, navigation toggles).
type Chrome interface {
	Init(ctx context.Context, v View) error
}

// NotificationsLoader fills the notifications area. Its contract belongs to
// the notifications owner; the controller only runs it alongside the other loads.
type NotificationsLoader interface {
	LoadNotifications(ctx context.Context, v View) error
}

type nopChrome struct{}

func (nopChrome) Init(context.Context, View) error { return nil }

type nopNotifications struct{}

func (nopNotifications) LoadNotifications(context.Context, View) error { return nil }

// Controller drives one job-seeker dashboard. It holds no per-view state;
// everything it renders is fetched fresh on each call.
type Controller struct {
	Source        Source
	Chrome        Chrome
	Notifications NotificationsLoader
	DetailPrefix  string // "View" links go to DetailPrefix + "/" + id
	Log           *zap.Logger
}

// Option configures optional collaborators of a Controller.
type Option func(*Controller)

// WithChrome sets the base dashboard initialised before each load.
func WithChrome(ch Chrome) Option {
	return func(c *Controller) {
		if ch != nil {
			c.Chrome = ch
		}
	}
}

// WithNotifications sets the loader run in parallel with the data loads.
func WithNotifications(n NotificationsLoader) Option {
	return func(c *Controller) {
		if n != nil {
			c.Notifications = n
		}
	}
}

func NewController(src Source, detailPrefix string, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		Source:        src,
		Chrome:        nopChrome{},
		Notifications: nopNotifications{},
		DetailPrefix:  detailPrefix,
		Log:           logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init initialises the base dashboard, then loads the data. A Chrome
// failure is logged and the data load still runs.
func (c *Controller) Init(ctx context.Context, v View) {
	if err := c.Chrome.Init(ctx, v); err != nil {
		c.Log.Warn("base dashboard init failed", zap.Error(err))
	}
	c.LoadDashboardData(ctx, v)
}

// LoadDashboardData runs the applications, notifications and KPI loads
// concurrently and waits for all of them. The loading class is on for the
// duration of the group and is cleared however the group ends.
func (c *Controller) LoadDashboardData(ctx context.Context, v View) {
	v.SetClass(MainID, LoadingClass, true)
	defer v.SetClass(MainID, LoadingClass, false)

	var (
		wg   conc.WaitGroup
		mu   sync.Mutex
		errs error
	)

	wg.Go(func() { c.LoadAppliedJobs(ctx, v) })
	wg.Go(func() {
		if err := c.Notifications.LoadNotifications(ctx, v); err != nil {
			mu.Lock()
			errs = multierr.Append(errs, fmt.Errorf("notifications: %w", err))
			mu.Unlock()
		}
	})
	wg.Go(func() { c.UpdateKPIs(ctx, v) })

	if r := wg.WaitAndRecover(); r != nil {
		errs = multierr.Append(errs, r.AsError())
	}
	if errs != nil {
		c.Log.Error("dashboard sync failed", zap.Error(errs))
	}
}

// LoadAppliedJobs renders the applications table body. It does nothing when
// the table is absent. Fetch failures become an inline error row and are
// not returned.
func (c *Controller) LoadAppliedJobs(ctx context.Context, v View) {
	if !v.Has(AppliedJobsID) {
		return
	}

	apps, err := c.Source.ListApplications(ctx)
	if err != nil {
		c.Log.Error("load applied jobs failed", zap.Error(err))
		v.SetHTML(AppliedJobsID, ErrorRow)
		return
	}

	html, err := RenderApplications(apps, c.DetailPrefix)
	if err != nil {
		c.Log.Error("render applied jobs failed", zap.Error(err))
		v.SetHTML(AppliedJobsID, ErrorRow)
		return
	}

	v.SetHTML(AppliedJobsID, html)
	c.Log.Debug("applied jobs rendered", zap.Int("count", len(apps)))
}

// UpdateKPIs writes the four counters. Negative counts show as 0. On failure
// it logs a warning and leaves every counter as it was.
func (c *Controller) UpdateKPIs(ctx context.Context, v View) {
	stats, err := c.Source.FetchStats(ctx)
	if err != nil {
		c.Log.Warn("update KPIs failed", zap.Error(err))
		return
	}

	for _, kpi := range []struct {
		id string
		n  int64
	}{
		{KPITotalID, stats.Total},
		{KPIPendingID, stats.Pending},
		{KPIAcceptedID, stats.Accepted},
		{KPIRejectedID, stats.Rejected},
	} {
		if !v.Has(kpi.id) {
			continue
		}
		n := kpi.n
		if n < 0 {
			c.Log.Warn("negative KPI count from upstream", zap.String("id", kpi.id), zap.Int64("count", n))
			n = 0
		}
		v.SetText(kpi.id, strconv.FormatInt(n, 10))
	}
}
