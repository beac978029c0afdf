package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
)

// stubRepositoryFactory hands the test's mock repositories to transactional code.
type stubRepositoryFactory struct {
	appointments  repository.AppointmentRepository
	outbox        repository.OutboxRepository
	notifications repository.NotificationRepository
}

func (f *stubRepositoryFactory) Appointments() repository.AppointmentRepository {
	return f.appointments
}

func (f *stubRepositoryFactory) Outbox() repository.OutboxRepository {
	return f.outbox
}

func (f *stubRepositoryFactory) Notifications() repository.NotificationRepository {
	return f.notifications
}

// stubTxManager runs the callback directly against the stub factory. Commit
// and rollback semantics are exercised against a real database elsewhere;
// unit tests only care about the orchestration inside the callback.
type stubTxManager struct {
	factory repository.RepositoryFactory
	execErr error
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.execErr != nil {
		return m.execErr
	}

	return fn(m.factory)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Appointment = &config.AppointmentConfig{
		PhonePrefix:   "+92",
		PhoneLength:   13,
		PreviewSize:   3,
		ReconcileSpec: "*/5 * * * *",
	}
	cfg.Outbox = &config.OutboxConfig{
		MaxAttempts: 5,
		BatchSize:   100,
	}
	cfg.Auth = &config.AuthConfig{
		MaxActiveSessions: 5,
	}

	return cfg
}
