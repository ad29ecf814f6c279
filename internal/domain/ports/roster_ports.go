package ports

import (
	"context"
	"time"

	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

// RosterSource pulls a crew member's duty days from the upstream feed.
type RosterSource interface {
	FetchByUser(ctx context.Context, userID string) ([]models.DutyDay, error)
}

// RosterRepository archives the last good roster per user so the app can
// still render when the feed is down.
type RosterRepository interface {
	LoadByUser(ctx context.Context, userID string) ([]models.DutyDay, error)
	Replace(ctx context.Context, userID string, days []models.DutyDay) error
}

type RosterCache interface {
	GetByUser(ctx context.Context, userID string) ([]models.DutyDay, error)
	Set(ctx context.Context, userID string, days []models.DutyDay, ttl time.Duration) error
}
