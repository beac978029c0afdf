package repository

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRepository defines the interface for plan purchase records.
type PurchaseRepository interface {
	// Create persists a new purchase record.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUser retrieves a user's purchases, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}

// HelpRequestRepository defines the interface for support requests.
type HelpRequestRepository interface {
	// Create persists a new help request.
	Create(ctx context.Context, request *entity.HelpRequest) error
}
