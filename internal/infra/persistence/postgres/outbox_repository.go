package postgres

import (
	"context"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// skipLockedClause keeps concurrent dispatchers from claiming the same rows.
func skipLockedClause() clause.Expression {
	return clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}
}

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{
		db: db,
	}
}

// Enqueue persists a new outbox event inside the caller's transaction.
func (repo *outboxRepository) Enqueue(ctx context.Context, event *entity.OutboxEvent) error {
	eventM := fromOutboxEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue outbox event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FetchUnpublished retrieves up to limit undelivered events below the attempt cap, oldest first.
// Rows are locked with FOR UPDATE SKIP LOCKED. The locks last only as long as
// the surrounding transaction, so callers must fetch, deliver, and stamp
// within one transaction; on a plain connection the claim evaporates the
// moment the select returns.
func (repo *outboxRepository) FetchUnpublished(ctx context.Context, limit, maxAttempts int) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel

	if err := repo.db.WithContext(ctx).
		Clauses(skipLockedClause()).
		Where("published_at IS NULL").
		Where("attempt_count < ?", maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch unpublished outbox events")
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOutboxEventDomain(eventM))
	}

	return events, nil
}

// MarkPublished stamps an event as delivered. Stamping a row that is already
// published is a no-op, so a replayed stamp never moves the timestamp.
func (repo *outboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ? AND published_at IS NULL", id).
		Update("published_at", &now)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox event published")
	}

	return nil
}

// MarkFailed records a failed delivery attempt and its error.
func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, deliveryErr error) error {
	lastError := ""
	if deliveryErr != nil {
		lastError = deliveryErr.Error()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempt_count": gorm.Expr("attempt_count + 1"),
			"last_error":    lastError,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark outbox event failed")
	}

	return nil
}

// --- Mapper Functions ---

// toOutboxEventDomain converts a GORM OutboxEventModel to a domain OutboxEvent entity.
func toOutboxEventDomain(data *model.OutboxEventModel) *entity.OutboxEvent {
	if data == nil {
		return nil
	}

	return &entity.OutboxEvent{
		ID:           data.ID,
		Category:     entity.NotificationCategory(data.Category),
		Title:        data.Title,
		Message:      data.Message,
		AttemptCount: data.AttemptCount,
		LastError:    data.LastError,
		PublishedAt:  data.PublishedAt,
		CreatedAt:    data.CreatedAt,
	}
}

// fromOutboxEventDomain converts a domain OutboxEvent entity to a GORM OutboxEventModel.
func fromOutboxEventDomain(data *entity.OutboxEvent) *model.OutboxEventModel {
	if data == nil {
		return nil
	}

	return &model.OutboxEventModel{
		ID:           data.ID,
		Category:     string(data.Category),
		Title:        data.Title,
		Message:      data.Message,
		AttemptCount: data.AttemptCount,
		LastError:    data.LastError,
		PublishedAt:  data.PublishedAt,
		CreatedAt:    data.CreatedAt,
	}
}
