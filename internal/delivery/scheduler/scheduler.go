// Package scheduler triggers the due-task scan in-process on a cron expression.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"plantcare/config"
	"plantcare/internal/delivery"
	"plantcare/internal/domain/lifecycle"
	"plantcare/internal/errors"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the scan scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

type scanScheduler struct {
	cron     *cron.Cron
	spec     string
	enabled  bool
	scanUC   usecase.ScanUsecase
	logger   *slog.Logger
	done     chan struct{}
	stopOnce sync.Once
}

// New builds the scheduler. A disabled scheduler serves nothing and only waits for shutdown.
func New(params Params) (delivery.Delivery, error) {
	s, err := newScanScheduler(params.Config.Scheduler, params.ScanUC, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScanScheduler(cfg *config.SchedulerConfig, scanUC usecase.ScanUsecase, logger *slog.Logger) (*scanScheduler, error) {
	logger = logs.WithComponent(logger, "scan_scheduler")
	cronLog := &slogCronLogger{logger: logger}

	s := &scanScheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		scanUC: scanUC,
		logger: logger,
		done:   make(chan struct{}),
	}
	if cfg == nil || !cfg.Enabled {
		return s, nil
	}

	s.enabled = true
	s.spec = cfg.Spec
	if _, err := s.cron.AddFunc(cfg.Spec, s.runScan); err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler spec %q", cfg.Spec)
	}

	return s, nil
}

// Serve starts the cron loop and blocks until ctx is done or the scheduler is stopped.
func (s *scanScheduler) Serve(ctx context.Context) error {
	if s.enabled {
		s.logger.Info("Starting scan scheduler", slog.String("spec", s.spec))
		s.cron.Start()
	}

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *scanScheduler) runScan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	summary, err := s.scanUC.RunScan(ctx)
	if err != nil {
		s.logger.Error("Scheduled scan failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Scheduled scan finished",
		slog.Int("processed", summary.ProcessedCount),
		slog.Int("sent", summary.NotificationsSent),
		slog.Int("errors", len(summary.Errors)),
	)
}

func (s *scanScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })
	if !s.enabled {
		return nil
	}

	s.logger.Info("Stopping scan scheduler")
	running := s.cron.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-running.Done():
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "scan still running at shutdown")
	}
}

// scanTimeout bounds one scheduled scan.
const scanTimeout = 4 * time.Minute

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
