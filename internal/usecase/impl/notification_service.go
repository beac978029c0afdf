package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface for the feed.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List retrieves all feed notifications, newest first.
func (srv *notificationService) List(ctx context.Context) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// Delete removes a single notification from the feed.
func (srv *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.notificationRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// Clear removes every notification and reports how many were removed.
func (srv *notificationService) Clear(ctx context.Context) (int64, error) {
	removed, err := srv.notificationRepo.DeleteAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear notifications")
	}

	srv.log(ctx).Info("Notification feed cleared", slog.Int64("removed", removed))

	return removed, nil
}
