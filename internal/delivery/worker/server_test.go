package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// stubLifecycle collects hooks without a running fx app.
type stubLifecycle struct {
	hooks []fx.Hook
}

func (l *stubLifecycle) Append(hook fx.Hook) {
	l.hooks = append(l.hooks, hook)
}

type stubReconciler struct{}

func (stubReconciler) ReconcileExpired(context.Context) (int, error) { return 0, nil }

type stubDispatcher struct{}

func (stubDispatcher) DispatchPending(context.Context) (int, error) { return 0, nil }

// stubSessionCleaner answers only the cleanup call; the embedded interface
// panics on anything else, and no worker job reaches anything else.
type stubSessionCleaner struct {
	usecase.UserUsecase
}

func (stubSessionCleaner) PurgeExpiredSessions(context.Context) (int64, error) { return 0, nil }

func workerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Appointment = &config.AppointmentConfig{ReconcileSpec: "*/5 * * * *"}
	cfg.Outbox = &config.OutboxConfig{DispatchInterval: 5 * time.Second}
	cfg.Auth = &config.AuthConfig{SessionCleanupSpec: "30 4 * * *"}

	return cfg
}

func newWorkerParams(cfg *config.Config, lc fx.Lifecycle) WorkerParams {
	return WorkerParams{
		Lc:          lc,
		Cfg:         cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReconcileUC: stubReconciler{},
		Dispatcher:  stubDispatcher{},
		UserUC:      stubSessionCleaner{},
	}
}

func TestNewWorker_RegistersStopHook(t *testing.T) {
	lc := &stubLifecycle{}

	_, err := NewWorker(newWorkerParams(workerTestConfig(), lc))

	require.NoError(t, err)
	require.Len(t, lc.hooks, 1)
	assert.NotNil(t, lc.hooks[0].OnStop)
}

func TestNewWorker_InvalidReconcileSpec(t *testing.T) {
	cfg := workerTestConfig()
	cfg.Appointment.ReconcileSpec = "not-a-spec"

	_, err := NewWorker(newWorkerParams(cfg, &stubLifecycle{}))

	assert.Error(t, err)
}

func TestNewWorker_InvalidSessionCleanupSpec(t *testing.T) {
	cfg := workerTestConfig()
	cfg.Auth.SessionCleanupSpec = "71 4 * * *"

	_, err := NewWorker(newWorkerParams(cfg, &stubLifecycle{}))

	assert.Error(t, err)
}
