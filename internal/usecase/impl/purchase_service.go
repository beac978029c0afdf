package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/duniya2no/ReMeet/internal/delivery/context"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase and HelpUsecase interfaces.
type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	helpRepo     repository.HelpRequestRepository
	logger       *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	PurchaseRepo repository.PurchaseRepository
	HelpRepo     repository.HelpRequestRepository
	Logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		purchaseRepo: params.PurchaseRepo,
		helpRepo:     params.HelpRepo,
		logger:       params.Logger,
	}
}

// NewHelpService exposes the same implementation through the HelpUsecase interface.
func NewHelpService(params PurchaseServiceParams) usecase.HelpUsecase {
	return &purchaseService{
		purchaseRepo: params.PurchaseRepo,
		helpRepo:     params.HelpRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record persists a plan purchase for the user.
func (srv *purchaseService) Record(ctx context.Context, userID uuid.UUID, input usecase.PurchaseInput) (*entity.Purchase, error) {
	if input.Plan == "" || input.Price == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("plan and price are required")
	}

	purchase := &entity.Purchase{
		UserID:      userID,
		Plan:        input.Plan,
		Price:       input.Price,
		PurchasedAt: time.Now(),
	}
	if err := srv.purchaseRepo.Create(ctx, purchase); err != nil {
		srv.log(ctx).Error("Failed to record purchase", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Purchase recorded",
		slog.Any("userID", userID),
		slog.String("plan", purchase.Plan),
	)

	return purchase, nil
}

// History retrieves the user's purchases, newest first.
func (srv *purchaseService) History(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

// Submit records a help request. userID is nil for anonymous submissions.
func (srv *purchaseService) Submit(ctx context.Context, userID *uuid.UUID, input usecase.HelpRequestInput) (*entity.HelpRequest, error) {
	if input.Subject == "" || input.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subject and message are required")
	}

	request := &entity.HelpRequest{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := srv.helpRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to submit help request", slog.Any("error", err))

		return nil, err
	}

	return request, nil
}
