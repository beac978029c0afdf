package postgres

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// helpRequestRepository implements the repository.HelpRequestRepository interface.
type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository is the constructor for helpRequestRepository.
func NewHelpRequestRepository(db *gorm.DB) repository.HelpRequestRepository {
	return &helpRequestRepository{
		db: db,
	}
}

// Create persists a new help request.
func (repo *helpRequestRepository) Create(ctx context.Context, request *entity.HelpRequest) error {
	requestM := fromHelpRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required help request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create help request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromHelpRequestDomain converts a domain HelpRequest entity to a GORM HelpRequestModel.
func fromHelpRequestDomain(data *entity.HelpRequest) *model.HelpRequestModel {
	if data == nil {
		return nil
	}

	return &model.HelpRequestModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
