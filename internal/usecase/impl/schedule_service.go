package impl

import (
	"context"
	"time"

	"github.com/duniya2no/ReMeet/config"
	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/domain/repository"
	"github.com/duniya2no/ReMeet/internal/domain/schedule"
	"github.com/duniya2no/ReMeet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scheduleService implements the ScheduleUsecase interface. The views are
// pure classifications over one repository read; all time-window rules live
// in the schedule package.
type scheduleService struct {
	appointmentRepo repository.AppointmentRepository
	previewSize     int
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	Config          *config.Config
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	previewSize := 3
	if params.Config != nil && params.Config.Appointment != nil {
		previewSize = params.Config.Appointment.PreviewSize
	}

	return &scheduleService{
		appointmentRepo: params.AppointmentRepo,
		previewSize:     previewSize,
	}
}

// Today retrieves appointments within [start-of-today, start-of-tomorrow).
func (srv *scheduleService) Today(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return schedule.Today(appointments, time.Now()), nil
}

// Preview retrieves the next few appointments strictly after now.
func (srv *scheduleService) Preview(ctx context.Context) ([]*entity.Appointment, error) {
	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return schedule.Preview(appointments, time.Now(), srv.previewSize), nil
}

// WeeklyAgenda retrieves upcoming appointments grouped by weekday name.
func (srv *scheduleService) WeeklyAgenda(ctx context.Context) ([]schedule.WeekdayGroup, error) {
	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return schedule.WeeklyAgenda(appointments, time.Now()), nil
}

// Views retrieves all three views from one point-in-time read so the live
// stream always emits a consistent snapshot.
func (srv *scheduleService) Views(ctx context.Context) (*usecase.ScheduleViews, error) {
	appointments, err := srv.appointmentRepo.ListOrdered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	now := time.Now()

	return &usecase.ScheduleViews{
		Today:   schedule.Today(appointments, now),
		Preview: schedule.Preview(appointments, now, srv.previewSize),
		Weekly:  schedule.WeeklyAgenda(appointments, now),
	}, nil
}
