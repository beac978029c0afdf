package impl

import (
	"context"
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/schedule"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	mockRepo "github.com/duniya2no/ReMeet/internal/mocks/repository"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAppointmentService(t *testing.T) (
	usecase.AppointmentUsecase,
	*mockRepo.MockAppointmentRepository,
	*mockRepo.MockOutboxRepository,
	*feed.Hub,
) {
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	hub := feed.NewHub(testLogger())

	service := NewAppointmentService(AppointmentServiceParams{
		TxManager: &stubTxManager{factory: &stubRepositoryFactory{
			appointments: appointmentRepo,
			outbox:       outboxRepo,
		}},
		AppointmentRepo: appointmentRepo,
		Hub:             hub,
		Config:          testConfig(),
		Logger:          testLogger(),
	})

	return service, appointmentRepo, outboxRepo, hub
}

func TestAppointmentService_Create_Success(t *testing.T) {
	service, appointmentRepo, outboxRepo, hub := createTestAppointmentService(t)

	signal, cancel := hub.Subscribe()
	defer cancel()

	ctx := context.Background()
	scheduledAt := time.Now().Add(48 * time.Hour)

	appointmentRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Appointment).ID = uuid.New()
	}).Return(nil)

	var queued *entity.OutboxEvent
	outboxRepo.On("Enqueue", ctx, mock.Anything).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*entity.OutboxEvent)
	}).Return(nil)

	appointment, err := service.Create(ctx, usecase.AppointmentInput{
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: scheduledAt,
		Confirmed:   true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, appointment.ID)
	assert.Equal(t, "Aisha", appointment.ClientName)
	assert.Equal(t, entity.AppointmentStatusActive, appointment.Status)

	require.NotNil(t, queued)
	assert.Equal(t, entity.NotificationCategoryCreated, queued.Category)
	assert.Equal(t, "New Appointment Created", queued.Title)
	assert.Contains(t, queued.Message, "Aisha")

	// The record lands in its weekday bucket but not in today's view.
	now := time.Now()
	weekly := schedule.WeeklyAgenda([]*entity.Appointment{appointment}, now)
	require.Len(t, weekly, 1)
	assert.Equal(t, scheduledAt.Weekday().String(), weekly[0].Day)
	assert.Empty(t, schedule.Today([]*entity.Appointment{appointment}, now))

	// The live feed saw the mutation.
	select {
	case <-signal:
	default:
		t.Fatal("expected a feed signal after create")
	}
}

func TestAppointmentService_Create_ValidationFailures(t *testing.T) {
	service, _, _, _ := createTestAppointmentService(t)
	ctx := context.Background()
	future := time.Now().Add(48 * time.Hour)

	tests := []struct {
		name    string
		input   usecase.AppointmentInput
		wantErr error
	}{
		{
			name:    "empty client name",
			input:   usecase.AppointmentInput{ClientName: "  ", Phone: "+923001234567", ScheduledAt: future, Confirmed: true},
			wantErr: domainerrors.ErrClientNameRequired,
		},
		{
			name:    "missing phone prefix",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "0300123456789", ScheduledAt: future, Confirmed: true},
			wantErr: domainerrors.ErrInvalidPhone,
		},
		{
			name:    "phone too short",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "+92300123456", ScheduledAt: future, Confirmed: true},
			wantErr: domainerrors.ErrInvalidPhone,
		},
		{
			name:    "phone too long",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "+9230012345678", ScheduledAt: future, Confirmed: true},
			wantErr: domainerrors.ErrInvalidPhone,
		},
		{
			name:    "scheduled in the past",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "+923001234567", ScheduledAt: time.Now().Add(-time.Hour), Confirmed: true},
			wantErr: domainerrors.ErrPastAppointment,
		},
		{
			name:    "tomorrow without confirmation",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "+923001234567", ScheduledAt: future, Confirmed: false},
			wantErr: domainerrors.ErrConfirmationRequired,
		},
		{
			name:    "unknown status",
			input:   usecase.AppointmentInput{ClientName: "Aisha", Phone: "+923001234567", ScheduledAt: future, Confirmed: true, Status: "paused"},
			wantErr: domainerrors.ErrInvalidStatus,
		},
	}

	// No repository expectations are registered: a write attempt fails the test.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppointmentService_ValidateInput_ConfirmationBoundary(t *testing.T) {
	service, _, _, _ := createTestAppointmentService(t)
	srv := service.(*appointmentService)

	now := time.Date(2025, 6, 11, 10, 30, 0, 0, time.Local)
	startOfTomorrow := time.Date(2025, 6, 12, 0, 0, 0, 0, time.Local)

	base := usecase.AppointmentInput{ClientName: "Aisha", Phone: "+923001234567"}

	// Later today needs no confirmation.
	sameDay := base
	sameDay.ScheduledAt = now.Add(2 * time.Hour)
	assert.NoError(t, srv.validateInput(sameDay, now))

	// Exactly midnight tomorrow requires it.
	atBoundary := base
	atBoundary.ScheduledAt = startOfTomorrow
	assert.ErrorIs(t, srv.validateInput(atBoundary, now), domainerrors.ErrConfirmationRequired)

	// One second before midnight does not.
	beforeBoundary := base
	beforeBoundary.ScheduledAt = startOfTomorrow.Add(-time.Second)
	assert.NoError(t, srv.validateInput(beforeBoundary, now))

	// Confirmation clears the gate.
	confirmed := atBoundary
	confirmed.Confirmed = true
	assert.NoError(t, srv.validateInput(confirmed, now))
}

func TestAppointmentService_Update_Success(t *testing.T) {
	service, appointmentRepo, outboxRepo, _ := createTestAppointmentService(t)
	ctx := context.Background()

	id := uuid.New()
	existing := &entity.Appointment{
		ID:          id,
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      entity.AppointmentStatusActive,
	}
	newTime := time.Now().Add(72 * time.Hour)

	appointmentRepo.On("FindByID", ctx, id).Return(existing, nil)
	appointmentRepo.On("Update", ctx, mock.Anything).Return(nil)

	var queued *entity.OutboxEvent
	outboxRepo.On("Enqueue", ctx, mock.Anything).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*entity.OutboxEvent)
	}).Return(nil)

	updated, err := service.Update(ctx, id, usecase.AppointmentInput{
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: newTime,
		Status:      "done",
		Confirmed:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, newTime, updated.ScheduledAt)
	assert.Equal(t, entity.AppointmentStatusDone, updated.Status)

	require.NotNil(t, queued)
	assert.Equal(t, entity.NotificationCategoryUpdated, queued.Category)
	assert.Contains(t, queued.Message, "Aisha")
}

func TestAppointmentService_Update_PastTimeRejectedWithoutMutation(t *testing.T) {
	service, _, _, _ := createTestAppointmentService(t)
	ctx := context.Background()

	// No FindByID/Update/Enqueue expectations: validation must fail first.
	_, err := service.Update(ctx, uuid.New(), usecase.AppointmentInput{
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(-time.Hour),
		Confirmed:   true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPastAppointment)
}

func TestAppointmentService_Update_NotFound(t *testing.T) {
	service, appointmentRepo, _, _ := createTestAppointmentService(t)
	ctx := context.Background()
	id := uuid.New()

	appointmentRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAppointmentNotFound)

	_, err := service.Update(ctx, id, usecase.AppointmentInput{
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(time.Hour),
		Confirmed:   true,
	})

	assert.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
}

func TestAppointmentService_Delete_Success(t *testing.T) {
	service, appointmentRepo, outboxRepo, _ := createTestAppointmentService(t)
	ctx := context.Background()

	id := uuid.New()
	existing := &entity.Appointment{
		ID:          id,
		ClientName:  "Aisha",
		Phone:       "+923001234567",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}

	appointmentRepo.On("FindByID", ctx, id).Return(existing, nil)
	appointmentRepo.On("Delete", ctx, id).Return(true, nil)

	var queued *entity.OutboxEvent
	outboxRepo.On("Enqueue", ctx, mock.Anything).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*entity.OutboxEvent)
	}).Return(nil)

	require.NoError(t, service.Delete(ctx, id))

	require.NotNil(t, queued)
	assert.Equal(t, entity.NotificationCategoryDeleted, queued.Category)
	assert.Contains(t, queued.Message, "Aisha")
}

func TestAppointmentService_Delete_MissingIDIsNotAnError(t *testing.T) {
	service, appointmentRepo, _, _ := createTestAppointmentService(t)
	ctx := context.Background()
	id := uuid.New()

	// Second delete in a double-delete race: the row is already gone.
	appointmentRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAppointmentNotFound)

	assert.NoError(t, service.Delete(ctx, id))
}

func TestAppointmentService_Delete_RowVanishesBetweenReadAndDelete(t *testing.T) {
	service, appointmentRepo, _, _ := createTestAppointmentService(t)
	ctx := context.Background()

	id := uuid.New()
	existing := &entity.Appointment{ID: id, ClientName: "Aisha", ScheduledAt: time.Now()}

	appointmentRepo.On("FindByID", ctx, id).Return(existing, nil)
	appointmentRepo.On("Delete", ctx, id).Return(false, nil)

	// No event is queued when the delete did not remove anything.
	assert.NoError(t, service.Delete(ctx, id))
}
