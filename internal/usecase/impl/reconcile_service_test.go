package impl

import (
	"context"
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	mockRepo "github.com/duniya2no/ReMeet/internal/mocks/repository"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReconcileService(t *testing.T) (
	usecase.ReconcileUsecase,
	*mockRepo.MockAppointmentRepository,
	*mockRepo.MockOutboxRepository,
	*feed.Hub,
) {
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	hub := feed.NewHub(testLogger())

	service := NewReconcileService(ReconcileServiceParams{
		TxManager: &stubTxManager{factory: &stubRepositoryFactory{
			appointments: appointmentRepo,
			outbox:       outboxRepo,
		}},
		AppointmentRepo: appointmentRepo,
		Hub:             hub,
		Logger:          testLogger(),
	})

	return service, appointmentRepo, outboxRepo, hub
}

func pastAppointment(name string, age time.Duration) *entity.Appointment {
	return &entity.Appointment{
		ID:          uuid.New(),
		ClientName:  name,
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(-age),
		Status:      entity.AppointmentStatusActive,
	}
}

func futureAppointment(name string, in time.Duration) *entity.Appointment {
	return &entity.Appointment{
		ID:          uuid.New(),
		ClientName:  name,
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(in),
		Status:      entity.AppointmentStatusActive,
	}
}

func TestReconcileService_RemovesExactlyThePastSet(t *testing.T) {
	service, appointmentRepo, outboxRepo, hub := createTestReconcileService(t)
	ctx := context.Background()

	signal, cancel := hub.Subscribe()
	defer cancel()

	pastA := pastAppointment("Aisha", 2*time.Hour)
	pastB := pastAppointment("Bilal", 48*time.Hour)
	future := futureAppointment("Chandni", 2*time.Hour)

	appointmentRepo.On("ListOrdered", ctx).
		Return([]*entity.Appointment{pastB, pastA, future}, nil)
	appointmentRepo.On("Delete", ctx, pastA.ID).Return(true, nil)
	appointmentRepo.On("Delete", ctx, pastB.ID).Return(true, nil)

	queued := make([]*entity.OutboxEvent, 0, 2)
	outboxRepo.On("Enqueue", ctx, mock.Anything).Run(func(args mock.Arguments) {
		queued = append(queued, args.Get(1).(*entity.OutboxEvent))
	}).Return(nil)

	removed, err := service.ReconcileExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// One finished event per removal, none for the future record.
	require.Len(t, queued, 2)
	names := []string{queued[0].Message, queued[1].Message}
	assert.Contains(t, names[0]+names[1], "Aisha")
	assert.Contains(t, names[0]+names[1], "Bilal")
	for _, event := range queued {
		assert.Equal(t, entity.NotificationCategoryFinished, event.Category)
		assert.Equal(t, "Appointment Finished", event.Title)
		assert.Contains(t, event.Message, "has finished.")
	}

	select {
	case <-signal:
	default:
		t.Fatal("expected a feed signal after reconcile removed records")
	}
}

func TestReconcileService_NothingExpired(t *testing.T) {
	service, appointmentRepo, _, _ := createTestReconcileService(t)
	ctx := context.Background()

	appointmentRepo.On("ListOrdered", ctx).
		Return([]*entity.Appointment{futureAppointment("Chandni", time.Hour)}, nil)

	removed, err := service.ReconcileExpired(ctx)

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestReconcileService_PerRecordFailureContinuesSweep(t *testing.T) {
	service, appointmentRepo, outboxRepo, _ := createTestReconcileService(t)
	ctx := context.Background()

	stuck := pastAppointment("Aisha", time.Hour)
	healthy := pastAppointment("Bilal", time.Hour)

	appointmentRepo.On("ListOrdered", ctx).
		Return([]*entity.Appointment{stuck, healthy}, nil)
	appointmentRepo.On("Delete", ctx, stuck.ID).Return(false, errors.New("deadlock detected"))
	appointmentRepo.On("Delete", ctx, healthy.ID).Return(true, nil)
	outboxRepo.On("Enqueue", ctx, mock.Anything).Return(nil)

	removed, err := service.ReconcileExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestReconcileService_AlreadyGoneRowCountsAsSuccess(t *testing.T) {
	service, appointmentRepo, _, _ := createTestReconcileService(t)
	ctx := context.Background()

	// A concurrent sweep removed the row first: no event, no error.
	gone := pastAppointment("Aisha", time.Hour)

	appointmentRepo.On("ListOrdered", ctx).Return([]*entity.Appointment{gone}, nil)
	appointmentRepo.On("Delete", ctx, gone.ID).Return(false, nil)

	removed, err := service.ReconcileExpired(ctx)

	require.NoError(t, err)
	assert.Zero(t, removed)
}
