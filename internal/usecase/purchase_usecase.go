package usecase

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseInput defines the data required to record a plan purchase.
type PurchaseInput struct {
	Plan  string
	Price string
}

// HelpRequestInput defines the data required to submit a help request.
type HelpRequestInput struct {
	Subject string
	Message string
}

// PurchaseUsecase defines the interface for subscription plan purchases.
type PurchaseUsecase interface {
	// Record persists a plan purchase for the user.
	Record(ctx context.Context, userID uuid.UUID, input PurchaseInput) (*entity.Purchase, error)

	// History retrieves the user's purchases, newest first.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error)
}

// HelpUsecase defines the interface for support requests.
type HelpUsecase interface {
	// Submit records a help request. userID is nil for anonymous submissions.
	Submit(ctx context.Context, userID *uuid.UUID, input HelpRequestInput) (*entity.HelpRequest, error)
}
