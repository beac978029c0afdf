package schedule

import (
	"testing"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2025-06-11 10:30 local time.
var testNow = time.Date(2025, time.June, 11, 10, 30, 0, 0, time.Local)

func appt(name string, at time.Time, status entity.AppointmentStatus) *entity.Appointment {
	return &entity.Appointment{
		ID:          uuid.New(),
		ClientName:  name,
		Phone:       "+923001234567",
		ScheduledAt: at,
		Status:      status,
	}
}

func names(appointments []*entity.Appointment) []string {
	out := make([]string, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.ClientName)
	}

	return out
}

func TestToday_BoundaryMembership(t *testing.T) {
	dayStart := StartOfDay(testNow)

	atMidnight := appt("midnight", dayStart, entity.AppointmentStatusActive)
	lastNight := appt("last-night", dayStart.Add(-time.Second), entity.AppointmentStatusActive)
	thisEvening := appt("evening", dayStart.Add(19*time.Hour), entity.AppointmentStatusActive)
	tomorrowMidnight := appt("tomorrow", dayStart.AddDate(0, 0, 1), entity.AppointmentStatusActive)

	got := Today([]*entity.Appointment{thisEvening, lastNight, atMidnight, tomorrowMidnight}, testNow)

	assert.Equal(t, []string{"midnight", "evening"}, names(got))
}

func TestToday_EmptySet(t *testing.T) {
	assert.Empty(t, Today(nil, testNow))
}

func TestPreview_FirstNAfterNow(t *testing.T) {
	in := []*entity.Appointment{
		appt("next-week", testNow.AddDate(0, 0, 7), entity.AppointmentStatusActive),
		appt("in-an-hour", testNow.Add(time.Hour), entity.AppointmentStatusActive),
		appt("earlier-today", testNow.Add(-time.Hour), entity.AppointmentStatusActive),
		appt("tonight", testNow.Add(8*time.Hour), entity.AppointmentStatusActive),
		appt("tomorrow", testNow.Add(26*time.Hour), entity.AppointmentStatusActive),
	}

	got := Preview(in, testNow, 3)

	assert.Equal(t, []string{"in-an-hour", "tonight", "tomorrow"}, names(got))
}

func TestPreview_ExactlyNowExcluded(t *testing.T) {
	in := []*entity.Appointment{appt("right-now", testNow, entity.AppointmentStatusActive)}

	assert.Empty(t, Preview(in, testNow, 3))
}

func TestWeeklyAgenda_GroupsByRawWeekday(t *testing.T) {
	// Both land on a Tuesday: one six days out, one three weeks out. They must
	// share the Tuesday section even though they are in different calendar weeks.
	nextTuesday := time.Date(2025, time.June, 17, 14, 0, 0, 0, time.Local)
	require.Equal(t, time.Tuesday, nextTuesday.Weekday())
	farTuesday := nextTuesday.AddDate(0, 0, 21)
	require.Equal(t, time.Tuesday, farTuesday.Weekday())

	in := []*entity.Appointment{
		appt("far-tuesday", farTuesday, entity.AppointmentStatusActive),
		appt("next-tuesday", nextTuesday, entity.AppointmentStatusActive),
	}

	groups := WeeklyAgenda(in, testNow)

	require.Len(t, groups, 1)
	assert.Equal(t, "Tuesday", groups[0].Day)
	assert.Equal(t, []string{"next-tuesday", "far-tuesday"}, names(groups[0].Appointments))
}

func TestWeeklyAgenda_SundayFirstOrderingAndEmptyGroupsOmitted(t *testing.T) {
	sunday := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())
	friday := time.Date(2025, time.June, 13, 16, 0, 0, 0, time.Local)
	require.Equal(t, time.Friday, friday.Weekday())

	in := []*entity.Appointment{
		appt("friday", friday, entity.AppointmentStatusActive),
		appt("sunday", sunday, entity.AppointmentStatusActive),
	}

	groups := WeeklyAgenda(in, testNow)

	require.Len(t, groups, 2)
	assert.Equal(t, "Sunday", groups[0].Day)
	assert.Equal(t, "Friday", groups[1].Day)
}

func TestWeeklyAgenda_ExcludesDoneCancelledAndPast(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1)

	in := []*entity.Appointment{
		appt("active", tomorrow, entity.AppointmentStatusActive),
		appt("done", tomorrow, entity.AppointmentStatusDone),
		appt("cancelled", tomorrow, entity.AppointmentStatusCancelled),
		appt("yesterday", testNow.AddDate(0, 0, -1), entity.AppointmentStatusActive),
	}

	groups := WeeklyAgenda(in, testNow)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"active"}, names(groups[0].Appointments))
}

func TestWeeklyAgenda_TodayMidnightExcluded(t *testing.T) {
	// Membership is strictly after today's midnight, so an appointment at
	// exactly midnight today is excluded while one later today is included.
	dayStart := StartOfDay(testNow)

	in := []*entity.Appointment{
		appt("at-midnight", dayStart, entity.AppointmentStatusActive),
		appt("later-today", dayStart.Add(15*time.Hour), entity.AppointmentStatusActive),
	}

	groups := WeeklyAgenda(in, testNow)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"later-today"}, names(groups[0].Appointments))
}
