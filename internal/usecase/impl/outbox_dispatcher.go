package impl

import (
	"context"
	"log/slog"

	"github.com/duniya2no/ReMeet/config"
	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/service"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// outboxDispatcher implements the OutboxDispatcher interface. It drains
// queued notification events into their side effects: the feed record, an
// optional push, and a pub/sub event. All outbox access goes through the
// claiming transaction, so the struct holds no outbox repository of its own.
type outboxDispatcher struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	pushService    service.PushService
	eventPublisher service.EventPublisher
	batchSize      int
	maxAttempts    int
	logger         *slog.Logger
}

// OutboxDispatcherParams holds dependencies for OutboxDispatcher, injected by Fx.
type OutboxDispatcherParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	PushService    service.PushService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOutboxDispatcher is the constructor for outboxDispatcher.
func NewOutboxDispatcher(params OutboxDispatcherParams) usecase.OutboxDispatcher {
	batchSize := 100
	maxAttempts := 5
	if params.Config != nil && params.Config.Outbox != nil {
		batchSize = params.Config.Outbox.BatchSize
		maxAttempts = params.Config.Outbox.MaxAttempts
	}

	return &outboxDispatcher{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		pushService:    params.PushService,
		eventPublisher: params.EventPublisher,
		batchSize:      batchSize,
		maxAttempts:    maxAttempts,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (d *outboxDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// DispatchPending delivers queued outbox events. The whole batch runs inside
// one transaction: the fetch locks its rows with SKIP LOCKED, and that claim
// only holds until the claiming transaction ends, so fetch, delivery, and the
// published stamp must share it or a concurrent dispatcher would pick up the
// same batch. Push and pub/sub delivery run before the feed record is
// written, so a failed event is retried on a later pass without ever
// duplicating feed records. Events that keep failing are parked once they hit
// the attempt cap.
func (d *outboxDispatcher) DispatchPending(ctx context.Context) (int, error) {
	published := 0
	err := d.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		outboxRepo := repoFactory.Outbox()

		events, err := outboxRepo.FetchUnpublished(ctx, d.batchSize, d.maxAttempts)
		if err != nil {
			return errors.Wrap(err, "failed to fetch unpublished outbox events")
		}
		if len(events) == 0 {
			return nil
		}

		tokens, err := d.pushTokens(ctx)
		if err != nil {
			// Push targets are a side channel; the feed must still advance.
			d.log(ctx).Warn("Failed to load push targets, skipping push delivery", slog.Any("error", err))
			tokens = nil
		}

		for _, event := range events {
			if err := d.deliver(ctx, repoFactory, event, tokens); err != nil {
				d.log(ctx).Warn("Outbox delivery failed",
					slog.Any("eventID", event.ID),
					slog.Int("attemptCount", event.AttemptCount+1),
					slog.Any("error", err),
				)

				// The failure stamp commits together with the batch.
				if markErr := outboxRepo.MarkFailed(ctx, event.ID, err); markErr != nil {
					d.log(ctx).Error("Failed to record outbox delivery failure",
						slog.Any("eventID", event.ID),
						slog.Any("error", markErr),
					)
				}

				continue
			}

			published++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if published > 0 {
		d.log(ctx).Debug("Outbox events dispatched", slog.Int("published", published))
	}

	return published, nil
}

// deliver sends one event's push and pub/sub side effects, then writes the
// feed record and published stamp through the claiming transaction.
func (d *outboxDispatcher) deliver(ctx context.Context, repoFactory repository.RepositoryFactory, event *entity.OutboxEvent, tokens []string) error {
	if len(tokens) > 0 {
		_, failureCount, _, err := d.pushService.SendBatchNotification(ctx, tokens, event.Title, event.Message, map[string]string{
			"category": string(event.Category),
		})
		if err != nil {
			return errors.Wrap(err, "push delivery failed")
		}
		if failureCount > 0 {
			d.log(ctx).Warn("Push delivery partially failed",
				slog.Any("eventID", event.ID),
				slog.Int("failureCount", failureCount),
			)
		}
	}

	publishErr := d.eventPublisher.PublishAppointmentEvent(ctx, &service.AppointmentEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   event.ID.String(),
		Category:  string(event.Category),
		Title:     event.Title,
		Message:   event.Message,
		CreatedAt: event.CreatedAt,
	})
	if publishErr != nil {
		return errors.Wrap(publishErr, "pubsub publish failed")
	}

	notification := &entity.Notification{
		Category: event.Category,
		Title:    event.Title,
		Message:  event.Message,
	}
	if err := repoFactory.Notifications().Create(ctx, notification); err != nil {
		return err
	}

	return repoFactory.Outbox().MarkPublished(ctx, event.ID)
}

// pushTokens collects device tokens of users who opted into notifications.
func (d *outboxDispatcher) pushTokens(ctx context.Context) ([]string, error) {
	targets, err := d.userRepo.ListPushTargets(ctx)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, 0, len(targets))
	for _, target := range targets {
		tokens = append(tokens, target.FCMToken)
	}

	return tokens, nil
}
