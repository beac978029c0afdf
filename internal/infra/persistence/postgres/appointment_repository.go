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
)

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrClientNameRequired
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	// Update the entity with generated values
	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByID retrieves an appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by ID")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// ListOrdered retrieves all appointments ascending by scheduled time.
func (repo *appointmentRepository) ListOrdered(ctx context.Context) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Order("scheduled_at ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// Update persists changes to an existing appointment.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"client_name":  appointment.ClientName,
			"phone":        appointment.Phone,
			"scheduled_at": appointment.ScheduledAt,
			"status":       string(appointment.Status),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update appointment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// Delete removes an appointment. Missing rows are not an error; the bool
// reports whether a row was actually removed so concurrent deletes stay quiet.
func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete appointment")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:          data.ID,
		ClientName:  data.ClientName,
		Phone:       data.Phone,
		ScheduledAt: data.ScheduledAt,
		Status:      entity.AppointmentStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:          data.ID,
		ClientName:  data.ClientName,
		Phone:       data.Phone,
		ScheduledAt: data.ScheduledAt,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
