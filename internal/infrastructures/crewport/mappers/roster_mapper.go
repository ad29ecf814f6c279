package mappers

import (
	"github.com/CrewShift/roster-adapter/internal/domain/models"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/crewport/dto"
)

// ToDomainDays converts feed day records into domain duty days, preserving
// order. Nullable check-in/check-out times become empty strings; records with
// blank labels are carried through and simply never match a lookup.
func ToDomainDays(records []dto.DayRecord) []models.DutyDay {
	days := make([]models.DutyDay, 0, len(records))
	for _, rec := range records {
		days = append(days, toDomainDay(rec))
	}
	return days
}

func toDomainDay(rec dto.DayRecord) models.DutyDay {
	day := models.DutyDay{
		Label:          rec.IndividualDay,
		ISODate:        rec.Date,
		DutyKind:       rec.Duty,
		BlockHours:     rec.FTBLH,
		FlightDutyTime: rec.FDT,
		DutyTime:       rec.DT,
		RestPeriod:     rec.RP,
	}

	if len(rec.Flights) == 0 {
		return day
	}

	day.Flights = make([]models.FlightLeg, 0, len(rec.Flights))
	for _, f := range rec.Flights {
		day.Flights = append(day.Flights, models.FlightLeg{
			DutyID:           f.Duty,
			CheckIn:          stringValue(f.CheckIn),
			CheckOut:         stringValue(f.CheckOut),
			DepartureStation: f.Departure,
			ArrivalStation:   f.Arrival,
			DepartureTime:    f.DepTime,
			ArrivalTime:      f.ArrivalTime,
			AircraftType:     f.Aircraft,
			CockpitCrew:      f.Cockpit,
			CabinCrew:        f.Cabin,
		})
	}

	return day
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
