package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/duniya2no/ReMeet/config"
	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/schedule"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	hub             *feed.Hub
	phonePrefix     string
	phoneLength     int
	logger          *slog.Logger
}

// AppointmentServiceParams holds dependencies for AppointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AppointmentRepo repository.AppointmentRepository
	Hub             *feed.Hub
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	phonePrefix := "+92"
	phoneLength := 13
	if params.Config != nil && params.Config.Appointment != nil {
		phonePrefix = params.Config.Appointment.PhonePrefix
		phoneLength = params.Config.Appointment.PhoneLength
	}

	return &appointmentService{
		txManager:       params.TxManager,
		appointmentRepo: params.AppointmentRepo,
		hub:             params.Hub,
		phonePrefix:     phonePrefix,
		phoneLength:     phoneLength,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all appointments ascending by scheduled time.
func (srv *appointmentService) List(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// GetOne retrieves a single appointment by ID.
func (srv *appointmentService) GetOne(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAppointmentNotFound) {
		return nil, domainerrors.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return appointment, nil
}

// Create validates and persists a new appointment, queueing its notification
// in the same transaction.
func (srv *appointmentService) Create(ctx context.Context, input usecase.AppointmentInput) (*entity.Appointment, error) {
	now := time.Now()
	if err := srv.validateInput(input, now); err != nil {
		return nil, err
	}

	status := entity.AppointmentStatusActive
	if input.Status != "" {
		status = entity.AppointmentStatus(input.Status)
		if !status.Valid() {
			return nil, domainerrors.ErrInvalidStatus
		}
	}

	appointment := &entity.Appointment{
		ClientName:  strings.TrimSpace(input.ClientName),
		Phone:       input.Phone,
		ScheduledAt: input.ScheduledAt,
		Status:      status,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Appointments().Create(ctx, appointment); err != nil {
			return err
		}

		event := newOutboxEvent(entity.NotificationCategoryCreated, appointment.ClientName, appointment.ScheduledAt)

		return repoFactory.Outbox().Enqueue(ctx, event)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create appointment", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Appointment created",
		slog.Any("appointmentID", appointment.ID),
		slog.Time("scheduledAt", appointment.ScheduledAt),
	)
	srv.hub.Broadcast()

	return appointment, nil
}

// Update validates and persists changes to an existing appointment, queueing
// its notification in the same transaction.
func (srv *appointmentService) Update(ctx context.Context, id uuid.UUID, input usecase.AppointmentInput) (*entity.Appointment, error) {
	now := time.Now()
	if err := srv.validateInput(input, now); err != nil {
		return nil, err
	}

	var updated *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.Appointments()

		appointment, err := appointmentRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrAppointmentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find appointment")
		}

		appointment.ClientName = strings.TrimSpace(input.ClientName)
		appointment.Phone = input.Phone
		appointment.ScheduledAt = input.ScheduledAt
		if input.Status != "" {
			status := entity.AppointmentStatus(input.Status)
			if !status.Valid() {
				return domainerrors.ErrInvalidStatus
			}
			appointment.Status = status
		}

		if err := appointmentRepo.Update(ctx, appointment); err != nil {
			return err
		}

		updated = appointment
		event := newOutboxEvent(entity.NotificationCategoryUpdated, appointment.ClientName, appointment.ScheduledAt)

		return repoFactory.Outbox().Enqueue(ctx, event)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update appointment", slog.Any("appointmentID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Appointment updated", slog.Any("appointmentID", id))
	srv.hub.Broadcast()

	return updated, nil
}

// Delete removes an appointment and queues its notification. Deleting an id
// that is already gone succeeds without queueing anything, so concurrent
// deletes of the same record stay quiet.
func (srv *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	removed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.Appointments()

		appointment, err := appointmentRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find appointment")
		}

		removed, err = appointmentRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}

		event := newOutboxEvent(entity.NotificationCategoryDeleted, appointment.ClientName, appointment.ScheduledAt)

		return repoFactory.Outbox().Enqueue(ctx, event)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete appointment", slog.Any("appointmentID", id), slog.Any("error", err))

		return err
	}

	if removed {
		srv.log(ctx).Info("Appointment deleted", slog.Any("appointmentID", id))
		srv.hub.Broadcast()
	}

	return nil
}

// validateInput enforces the write gate: name present, phone well-formed,
// time not in the past, and explicit confirmation for tomorrow-or-later slots.
func (srv *appointmentService) validateInput(input usecase.AppointmentInput, now time.Time) error {
	if strings.TrimSpace(input.ClientName) == "" {
		return domainerrors.ErrClientNameRequired
	}

	if !strings.HasPrefix(input.Phone, srv.phonePrefix) || len(input.Phone) != srv.phoneLength {
		return domainerrors.ErrInvalidPhone
	}

	if input.ScheduledAt.Before(now) {
		return domainerrors.ErrPastAppointment
	}

	startOfTomorrow := schedule.StartOfDay(now).AddDate(0, 0, 1)
	if !input.Confirmed && !input.ScheduledAt.Before(startOfTomorrow) {
		return domainerrors.ErrConfirmationRequired
	}

	return nil
}
