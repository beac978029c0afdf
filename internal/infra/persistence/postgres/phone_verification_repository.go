package postgres

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	domainerrors "github.com/duniya2no/ReMeet/internal/domain/errors"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// phoneVerificationRepository implements the repository.PhoneVerificationRepository interface.
type phoneVerificationRepository struct {
	db *gorm.DB
}

// NewPhoneVerificationRepository is the constructor for phoneVerificationRepository.
func NewPhoneVerificationRepository(db *gorm.DB) repository.PhoneVerificationRepository {
	return &phoneVerificationRepository{
		db: db,
	}
}

// Upsert replaces any pending verification for the user with a new challenge.
// The unique index on user_id makes the replace atomic.
func (repo *phoneVerificationRepository) Upsert(ctx context.Context, verification *entity.PhoneVerification) error {
	verificationM := fromPhoneVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone", "code_hash", "expires_at", "created_at"}),
		}).
		Create(verificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert phone verification")
	}

	// Update the entity with generated values
	verification.ID = verificationM.ID
	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

// FindByUser retrieves the pending verification for a user.
func (repo *phoneVerificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PhoneVerification, error) {
	var verificationM model.PhoneVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone verification by user")
	}

	return toPhoneVerificationDomain(&verificationM), nil
}

// Delete removes a pending verification once consumed.
func (repo *phoneVerificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhoneVerificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete phone verification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPhoneVerificationDomain converts a GORM PhoneVerificationModel to a domain PhoneVerification entity.
func toPhoneVerificationDomain(data *model.PhoneVerificationModel) *entity.PhoneVerification {
	if data == nil {
		return nil
	}

	return &entity.PhoneVerification{
		ID:        data.ID,
		UserID:    data.UserID,
		Phone:     data.Phone,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromPhoneVerificationDomain converts a domain PhoneVerification entity to a GORM PhoneVerificationModel.
func fromPhoneVerificationDomain(data *entity.PhoneVerification) *model.PhoneVerificationModel {
	if data == nil {
		return nil
	}

	return &model.PhoneVerificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Phone:     data.Phone,
		CodeHash:  data.CodeHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
