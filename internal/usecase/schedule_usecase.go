package usecase

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
	"github.com/duniya2no/ReMeet/internal/domain/schedule"
)

// ScheduleViews bundles all three derived views for the live stream, so a
// single signal from the feed hub re-emits a consistent snapshot.
type ScheduleViews struct {
	Today   []*entity.Appointment   `json:"today"`
	Preview []*entity.Appointment   `json:"preview"`
	Weekly  []schedule.WeekdayGroup `json:"weekly"`
}

// ScheduleUsecase defines the interface for the derived schedule views.
type ScheduleUsecase interface {
	// Today retrieves appointments within [start-of-today, start-of-tomorrow).
	Today(ctx context.Context) ([]*entity.Appointment, error)

	// Preview retrieves the next few appointments strictly after now.
	Preview(ctx context.Context) ([]*entity.Appointment, error)

	// WeeklyAgenda retrieves upcoming appointments grouped by weekday name.
	WeeklyAgenda(ctx context.Context) ([]schedule.WeekdayGroup, error)

	// Views retrieves all three views from one point-in-time read.
	Views(ctx context.Context) (*ScheduleViews, error)
}
