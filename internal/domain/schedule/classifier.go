// Package schedule derives the view-specific appointment subsets from the full
// live set: the daily list, the dashboard preview and the weekly agenda.
package schedule

import (
	"sort"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
)

// WeekdayGroup is one section of the weekly agenda.
type WeekdayGroup struct {
	Day          string                `json:"day"` // Weekday name, "Sunday" through "Saturday".
	Appointments []*entity.Appointment `json:"appointments"`
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the appointments scheduled within [start-of-today, start-of-tomorrow),
// ascending by scheduled time. An appointment at exactly midnight today is included;
// one at 23:59:59 the previous day is not.
func Today(appointments []*entity.Appointment, now time.Time) []*entity.Appointment {
	dayStart := StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := make([]*entity.Appointment, 0)
	for _, appt := range appointments {
		if !appt.ScheduledAt.Before(dayStart) && appt.ScheduledAt.Before(dayEnd) {
			out = append(out, appt)
		}
	}
	sortAscending(out)

	return out
}

// Preview returns the first limit appointments scheduled strictly after now,
// ascending, regardless of date. It backs the dashboard's "upcoming" card.
func Preview(appointments []*entity.Appointment, now time.Time, limit int) []*entity.Appointment {
	out := make([]*entity.Appointment, 0)
	for _, appt := range appointments {
		if appt.ScheduledAt.After(now) {
			out = append(out, appt)
		}
	}
	sortAscending(out)

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// WeeklyAgenda groups appointments by weekday name, Sunday first.
//
// Membership: scheduled strictly after today's midnight, status neither done
// nor cancelled. Grouping uses the appointment's own weekday regardless of
// which calendar week the date falls in, so a booking three weeks out on a
// Tuesday shares the "Tuesday" section with one tomorrow. The agenda screen
// this replaces behaved that way, and clients rely on it.
// Empty weekday groups are omitted.
func WeeklyAgenda(appointments []*entity.Appointment, now time.Time) []WeekdayGroup {
	dayStart := StartOfDay(now)

	buckets := make(map[time.Weekday][]*entity.Appointment, 7)
	for _, appt := range appointments {
		if !appt.ScheduledAt.After(dayStart) {
			continue
		}
		if appt.Status == entity.AppointmentStatusDone || appt.Status == entity.AppointmentStatusCancelled {
			continue
		}
		weekday := appt.ScheduledAt.Weekday()
		buckets[weekday] = append(buckets[weekday], appt)
	}

	groups := make([]WeekdayGroup, 0, len(buckets))
	for day := time.Sunday; day <= time.Saturday; day++ {
		members := buckets[day]
		if len(members) == 0 {
			continue
		}
		sortAscending(members)
		groups = append(groups, WeekdayGroup{
			Day:          day.String(),
			Appointments: members,
		})
	}

	return groups
}

func sortAscending(appointments []*entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].ScheduledAt.Before(appointments[j].ScheduledAt)
	})
}
