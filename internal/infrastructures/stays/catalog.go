// Package stays holds the crew layover arrangements per station. The data is
// maintained by ops and changes a few times a season, so it ships as a static
// catalog injected into the handler rather than another remote feed.
package stays

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

type Catalog struct {
	byStation map[string]models.StayInfo
}

func NewCatalog(entries []models.StayInfo) *Catalog {
	byStation := make(map[string]models.StayInfo, len(entries))
	for _, e := range entries {
		byStation[strings.ToUpper(e.Station)] = e
	}
	return &Catalog{byStation: byStation}
}

func (c *Catalog) GetByStation(_ context.Context, station string) (models.StayInfo, error) {
	stay, ok := c.byStation[strings.ToUpper(strings.TrimSpace(station))]
	if !ok {
		return models.StayInfo{}, derr.ErrStayNotFound
	}
	return stay, nil
}

// mapLinks builds the web URL plus the iOS maps: and Android geo: deep links
// the mobile app hands to the platform.
func mapLinks(hotel, address string, lat, lng float64) models.MapLinks {
	label := url.QueryEscape(hotel)
	return models.MapLinks{
		Web:     fmt.Sprintf("https://maps.google.com/?q=%s", url.QueryEscape(address)),
		IOS:     fmt.Sprintf("maps:0,0?q=%s@%f,%f", label, lat, lng),
		Android: fmt.Sprintf("geo:0,0?q=%f,%f(%s)", lat, lng, label),
	}
}

// Default is the current season's layover catalog.
func Default() *Catalog {
	return NewCatalog([]models.StayInfo{
		{
			Station:          "SOF",
			Hotel:            "Grand Sheraton Sofia",
			Address:          "5 Sveta Nedelya Square, 1000 Sofia, Bulgaria",
			CheckIn:          "14:00",
			CheckOut:         "12:00",
			RoomNumber:       "724",
			ConfirmationCode: "SH39275",
			Amenities: []string{
				"Free Wi-Fi",
				"Breakfast included",
				"Fitness center",
				"Airport shuttle",
				"24h room service",
			},
			Contact:  "+359 2 981 6541",
			Distance: "1.2km from Sofia Airport (SOF)",
			Maps:     mapLinks("Grand Sheraton Sofia", "5 Sveta Nedelya Square, 1000 Sofia, Bulgaria", 42.6954108, 23.3212612),
		},
		{
			Station:  "WAW",
			Hotel:    "Courtyard Warsaw Airport",
			Address:  "Zwirki i Wigury 1, 00-906 Warsaw, Poland",
			CheckIn:  "15:00",
			CheckOut: "12:00",
			Amenities: []string{
				"Free Wi-Fi",
				"Breakfast included",
				"Terminal walkway",
			},
			Contact:  "+48 22 650 0100",
			Distance: "Connected to Warsaw Chopin Airport (WAW)",
			Maps:     mapLinks("Courtyard Warsaw Airport", "Zwirki i Wigury 1, 00-906 Warsaw, Poland", 52.1672, 20.9679),
		},
		{
			Station:  "AYT",
			Hotel:    "IC Hotels Airport",
			Address:  "Yesilkoy Mah, 07200 Antalya, Turkey",
			CheckIn:  "14:00",
			CheckOut: "12:00",
			Amenities: []string{
				"Free Wi-Fi",
				"Outdoor pool",
				"Airport shuttle",
			},
			Contact:  "+90 242 463 1010",
			Distance: "1.5km from Antalya Airport (AYT)",
			Maps:     mapLinks("IC Hotels Airport", "Yesilkoy Mah, 07200 Antalya, Turkey", 36.9042, 30.7928),
		},
	})
}
