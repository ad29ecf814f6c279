// Package crewport adapts the airline crew-portal schedule feed to the
// domain RosterSource port.
package crewport

import (
	"context"
	"errors"
	"fmt"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/crewport/http/client"
	"github.com/CrewShift/roster-adapter/internal/infrastructures/crewport/mappers"
)

type Source struct {
	client *client.Client
}

func NewSource(client *client.Client) *Source {
	return &Source{
		client: client,
	}
}

func (s *Source) FetchByUser(ctx context.Context, userID string) ([]models.DutyDay, error) {
	records, err := s.client.GetSchedule(ctx, userID)
	if err != nil {
		if errors.Is(err, derr.ErrSourceUnavailable) {
			return nil, fmt.Errorf("get schedule: %w", derr.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	return mappers.ToDomainDays(records), nil
}
