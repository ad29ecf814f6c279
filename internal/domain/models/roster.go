package models

// DutyKindDayOff is the sentinel the crew feed uses for rest days.
const DutyKindDayOff = "Day Off"

type DayStatus string

const (
	StatusNone            DayStatus = "none"
	StatusDayOff          DayStatus = "dayOff"
	StatusWorkNoFlight    DayStatus = "workNoFlight"
	StatusSingleFlight    DayStatus = "singleFlight"
	StatusMultipleFlights DayStatus = "multipleFlights"
)

// FlightLeg is one flight segment within a duty day. DepartureTime and
// ArrivalTime are always present for an existing leg; CheckIn and CheckOut
// are empty when the feed did not record them.
type FlightLeg struct {
	DutyID           string `json:"duty_id"`
	CheckIn          string `json:"check_in,omitempty"`
	CheckOut         string `json:"check_out,omitempty"`
	DepartureStation string `json:"departure_station"`
	ArrivalStation   string `json:"arrival_station"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	AircraftType     string `json:"aircraft_type"`
	CockpitCrew      string `json:"cockpit_crew"`
	CabinCrew        string `json:"cabin_crew"`
}

// DutyDay is one calendar day of a crew roster. Label is the feed's display
// string ("Mon, 01Apr") and remains the authoritative match key for date
// lookups; ISODate is carried for archival but never used to match.
type DutyDay struct {
	Label          string      `json:"label"`
	ISODate        string      `json:"iso_date"`
	DutyKind       string      `json:"duty_kind,omitempty"`
	BlockHours     string      `json:"block_hours,omitempty"`
	FlightDutyTime string      `json:"flight_duty_time,omitempty"`
	DutyTime       string      `json:"duty_time,omitempty"`
	RestPeriod     string      `json:"rest_period,omitempty"`
	Flights        []FlightLeg `json:"flights,omitempty"`
}

// DutyWindow is the derived on-duty/off-duty pair for a day. Both values are
// empty strings when the day has no flights.
type DutyWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
