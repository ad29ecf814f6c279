package models

// MapLinks are the platform-specific deep links the app opens for a hotel.
type MapLinks struct {
	Web     string `json:"web"`
	IOS     string `json:"ios"`
	Android string `json:"android"`
}

// StayInfo describes the crew layover arrangement at a station.
type StayInfo struct {
	Station          string   `json:"station"`
	Hotel            string   `json:"hotel"`
	Address          string   `json:"address"`
	CheckIn          string   `json:"check_in"`
	CheckOut         string   `json:"check_out"`
	RoomNumber       string   `json:"room_number,omitempty"`
	ConfirmationCode string   `json:"confirmation_code,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	Contact          string   `json:"contact,omitempty"`
	Distance         string   `json:"distance,omitempty"`
	Maps             MapLinks `json:"maps"`
}
