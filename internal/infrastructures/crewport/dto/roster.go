// Package dto mirrors the crew-portal feed payloads verbatim. Field names
// and the nullable check-in/check-out times follow the feed, not our domain.
package dto

type GetScheduleRequest struct {
	UserID string `json:"userId"`
}

// GetScheduleResponse is the enveloped variant of the feed response; the feed
// also serves a bare DayRecord array depending on portal version.
type GetScheduleResponse struct {
	Schedule []DayRecord `json:"schedule"`
}

type DayRecord struct {
	IndividualDay string   `json:"IndividualDay"`
	Date          string   `json:"Date"`
	Duty          string   `json:"Duty,omitempty"`
	FTBLH         string   `json:"FT_BLH,omitempty"`
	FDT           string   `json:"FDT,omitempty"`
	DT            string   `json:"DT,omitempty"`
	RP            string   `json:"RP,omitempty"`
	Flights       []Flight `json:"Flights,omitempty"`
}

type Flight struct {
	Duty        string  `json:"Duty"`
	CheckIn     *string `json:"CheckIn"`
	CheckOut    *string `json:"CheckOut"`
	Departure   string  `json:"Departure"`
	Arrival     string  `json:"Arrival"`
	DepTime     string  `json:"DepTime"`
	ArrivalTime string  `json:"ArrivalTime"`
	Aircraft    string  `json:"Aircraft"`
	Cockpit     string  `json:"Cockpit"`
	Cabin       string  `json:"Cabin"`
}
