package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/infra/feed"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reconcileService implements the ReconcileUsecase interface.
type reconcileService struct {
	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	hub             *feed.Hub
	logger          *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AppointmentRepo repository.AppointmentRepository
	Hub             *feed.Hub
	Logger          *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	return &reconcileService{
		txManager:       params.TxManager,
		appointmentRepo: params.AppointmentRepo,
		hub:             params.Hub,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReconcileExpired removes every appointment scheduled strictly before now
// and queues one finished notification per removal. The read is a point-in-time
// snapshot; records created after it are left for the next sweep.
func (srv *reconcileService) ReconcileExpired(ctx context.Context) (int, error) {
	now := time.Now()

	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list appointments for reconcile")
	}

	removedCount := 0
	for _, appointment := range appointments {
		if !appointment.Expired(now) {
			continue
		}

		removed, err := srv.removeExpired(ctx, appointment)
		if err != nil {
			// One stuck record must not stall the sweep.
			srv.log(ctx).Error("Failed to reconcile appointment",
				slog.Any("appointmentID", appointment.ID),
				slog.Any("error", err),
			)

			continue
		}
		if removed {
			removedCount++
		}
	}

	if removedCount > 0 {
		srv.log(ctx).Info("Expired appointments reconciled", slog.Int("removed", removedCount))
		srv.hub.Broadcast()
	}

	return removedCount, nil
}

// removeExpired deletes one expired appointment and queues its finished event
// atomically. A row already deleted by a concurrent sweep is not an error.
func (srv *reconcileService) removeExpired(ctx context.Context, appointment *entity.Appointment) (bool, error) {
	removed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		removed, err = repoFactory.Appointments().Delete(ctx, appointment.ID)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}

		event := newOutboxEvent(entity.NotificationCategoryFinished, appointment.ClientName, appointment.ScheduledAt)

		return repoFactory.Outbox().Enqueue(ctx, event)
	})

	return removed, err
}
