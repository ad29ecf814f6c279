package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

var monthAbbr = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// matchToken builds the zero-padded day + month-abbreviation token embedded
// in feed labels, e.g. "01Apr" inside "Mon, 01Apr".
func matchToken(day int, month time.Month) string {
	return fmt.Sprintf("%02d%s", day, monthAbbr[month-1])
}

// FindDay returns the first duty day whose label contains the date token, or
// nil. The label is the only authoritative match key; the feed's ISO date
// field is not consulted. A nil or empty roster is simply a miss.
func FindDay(days []models.DutyDay, day int, month time.Month) *models.DutyDay {
	if month < time.January || month > time.December {
		return nil
	}

	token := matchToken(day, month)
	for i := range days {
		if strings.Contains(days[i].Label, token) {
			return &days[i]
		}
	}

	return nil
}

// Classify derives the status category for a date. It is a pure function of
// its inputs: no record → StatusNone, a Day Off record → StatusDayOff
// regardless of any legs, otherwise the leg count decides.
func Classify(days []models.DutyDay, day int, month time.Month) models.DayStatus {
	rec := FindDay(days, day, month)
	if rec == nil {
		return models.StatusNone
	}

	if rec.DutyKind == models.DutyKindDayOff {
		return models.StatusDayOff
	}

	switch {
	case len(rec.Flights) > 1:
		return models.StatusMultipleFlights
	case len(rec.Flights) == 1:
		return models.StatusSingleFlight
	default:
		return models.StatusWorkNoFlight
	}
}
