package schedule

import "github.com/CrewShift/roster-adapter/internal/domain/models"

// Window derives the duty start/end pair for a day. Crew duty convention:
// the day starts at the first leg's check-in (falling back to its departure
// time when no check-in was recorded) and ends at the last leg's check-out
// (falling back to its arrival time). Days without flights yield empty
// strings.
func Window(day *models.DutyDay) models.DutyWindow {
	if day == nil || len(day.Flights) == 0 {
		return models.DutyWindow{}
	}

	first := day.Flights[0]
	last := day.Flights[len(day.Flights)-1]

	w := models.DutyWindow{Start: first.CheckIn, End: last.CheckOut}
	if w.Start == "" {
		w.Start = first.DepartureTime
	}
	if w.End == "" {
		w.End = last.ArrivalTime
	}

	return w
}
