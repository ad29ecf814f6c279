package models

// Roster data states surfaced to the mobile client.
const (
	StateReady = "ready"
	StateError = "error"
)

// CellView is one calendar grid position annotated with its duty status.
type CellView struct {
	Day     int       `json:"day"`
	Month   int       `json:"month"`
	Year    int       `json:"year"`
	InMonth bool      `json:"in_month"`
	Status  DayStatus `json:"status"`
}

// LegView is a flight leg plus its computed block duration.
type LegView struct {
	FlightLeg
	Duration string `json:"duration"`
}

// MonthView is everything the calendar screen needs for one month: the full
// grid, the week slice around the selected day, and the selected day's
// itinerary. State is StateError when the feed could not be reached and no
// archived roster existed; the grid still renders, empty.
type MonthView struct {
	UserID      string     `json:"user_id"`
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	SelectedDay int        `json:"selected_day"`
	State       string     `json:"state"`
	Error       string     `json:"error,omitempty"`
	Cells       []CellView `json:"cells"`
	Week        []CellView `json:"week"`
	Status      DayStatus  `json:"status"`
	Window      DutyWindow `json:"window"`
	Legs        []LegView  `json:"legs"`
}

// DayView is the itinerary screen payload for a single date.
type DayView struct {
	UserID         string     `json:"user_id"`
	Date           string     `json:"date"`
	State          string     `json:"state"`
	Error          string     `json:"error,omitempty"`
	Found          bool       `json:"found"`
	Status         DayStatus  `json:"status"`
	Window         DutyWindow `json:"window"`
	Legs           []LegView  `json:"legs"`
	BlockHours     string     `json:"block_hours,omitempty"`
	FlightDutyTime string     `json:"flight_duty_time,omitempty"`
	DutyTime       string     `json:"duty_time,omitempty"`
	RestPeriod     string     `json:"rest_period,omitempty"`
}
