// Package worker runs the background jobs behind the scheduling engine: the
// appointment expiry sweep, the notification outbox dispatcher, and the
// expired session cleanup.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/delivery"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// WorkerParams holds dependencies for the cron worker
type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	ReconcileUC usecase.ReconcileUsecase
	Dispatcher  usecase.OutboxDispatcher
	UserUC      usecase.UserUsecase
}

type cronWorker struct {
	cfg    *config.Config
	logger *slog.Logger
	cron   *cron.Cron
}

// NewWorker wires the expiry sweep and the outbox dispatcher onto one cron
// scheduler. Job runs are skipped while the previous run is still going, so a
// slow sweep never stacks up behind itself.
func NewWorker(params WorkerParams) (delivery.Delivery, error) {
	scheduler := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))

	worker := &cronWorker{
		cfg:    params.Cfg,
		logger: params.Logger,
		cron:   scheduler,
	}

	reconcileSpec := params.Cfg.Appointment.ReconcileSpec
	if _, err := scheduler.AddFunc(reconcileSpec, func() {
		ctx := context.Background()
		removed, err := params.ReconcileUC.ReconcileExpired(ctx)
		if err != nil {
			params.Logger.Error("Reconcile sweep failed", slog.Any("error", err))

			return
		}
		if removed > 0 {
			params.Logger.Info("Reconcile sweep finished", slog.Int("removed", removed))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid reconcile spec %q", reconcileSpec)
	}

	dispatchSpec := fmt.Sprintf("@every %s", params.Cfg.Outbox.DispatchInterval)
	if _, err := scheduler.AddFunc(dispatchSpec, func() {
		ctx := context.Background()
		published, err := params.Dispatcher.DispatchPending(ctx)
		if err != nil {
			params.Logger.Error("Outbox dispatch failed", slog.Any("error", err))

			return
		}
		if published > 0 {
			params.Logger.Debug("Outbox dispatch finished", slog.Int("published", published))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid dispatch spec %q", dispatchSpec)
	}

	cleanupSpec := params.Cfg.Auth.SessionCleanupSpec
	if _, err := scheduler.AddFunc(cleanupSpec, func() {
		ctx := context.Background()
		removed, err := params.UserUC.PurgeExpiredSessions(ctx)
		if err != nil {
			params.Logger.Error("Session cleanup failed", slog.Any("error", err))

			return
		}
		if removed > 0 {
			params.Logger.Info("Session cleanup finished", slog.Int64("removed", removed))
		}
	}); err != nil {
		return nil, errors.Wrapf(err, "invalid session cleanup spec %q", cleanupSpec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: worker.stop,
	})

	return worker, nil
}

// Serve runs the scheduler until it is stopped.
func (w *cronWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting cron worker",
		slog.String("reconcileSpec", w.cfg.Appointment.ReconcileSpec),
		slog.Duration("dispatchInterval", w.cfg.Outbox.DispatchInterval),
		slog.String("sessionCleanupSpec", w.cfg.Auth.SessionCleanupSpec),
	)
	w.cron.Run()

	return nil
}

// stop halts scheduling and waits for in-flight jobs to finish.
func (w *cronWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down cron worker")

	stopCtx := w.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "cron worker shutdown timed out")
	}
}
