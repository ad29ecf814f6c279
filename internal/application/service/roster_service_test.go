package service

import (
	"context"
	"errors"
	"testing"
	"time"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
	"go.uber.org/zap"
)

type sourceMock struct {
	days  []models.DutyDay
	err   error
	calls int
}

func (m *sourceMock) FetchByUser(_ context.Context, _ string) ([]models.DutyDay, error) {
	m.calls++
	return m.days, m.err
}

type repoMock struct {
	days         []models.DutyDay
	loadErr      error
	replaceErr   error
	loadCalls    int
	replaceCalls int
}

func (m *repoMock) LoadByUser(_ context.Context, _ string) ([]models.DutyDay, error) {
	m.loadCalls++
	return m.days, m.loadErr
}

func (m *repoMock) Replace(_ context.Context, _ string, _ []models.DutyDay) error {
	m.replaceCalls++
	return m.replaceErr
}

type cacheMock struct {
	days     []models.DutyDay
	getErr   error
	setErr   error
	getCalls int
	setCalls int
	lastTTL  time.Duration
}

func (m *cacheMock) GetByUser(_ context.Context, _ string) ([]models.DutyDay, error) {
	m.getCalls++
	return m.days, m.getErr
}

func (m *cacheMock) Set(_ context.Context, _ string, days []models.DutyDay, ttl time.Duration) error {
	m.setCalls++
	m.lastTTL = ttl
	return m.setErr
}

func twoLegDay() models.DutyDay {
	return models.DutyDay{
		Label:   "Mon, 01Apr",
		ISODate: "2025-04-01",
		Flights: []models.FlightLeg{
			{DutyID: "CAI8001", CheckIn: "03:45", DepartureStation: "SOF", ArrivalStation: "WAW", DepartureTime: "04:45", ArrivalTime: "07:45"},
			{DutyID: "CAI8002", CheckOut: "12:10", DepartureStation: "WAW", ArrivalStation: "AYT", DepartureTime: "08:30", ArrivalTime: "10:45"},
		},
	}
}

func TestGetRoster_CacheHit(t *testing.T) {
	cache := &cacheMock{days: []models.DutyDay{twoLegDay()}}
	repo := &repoMock{}
	source := &sourceMock{}

	svc := NewRosterService(zap.NewNop(), source, repo, cache, nil, 15*time.Minute)
	days, err := svc.GetRoster(context.Background(), "crew-42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected cached roster, got %+v", days)
	}
	if repo.loadCalls != 0 || source.calls != 0 {
		t.Fatalf("expected only the cache to be consulted, repo=%d source=%d", repo.loadCalls, source.calls)
	}
}

func TestGetRoster_CacheMissArchiveHit(t *testing.T) {
	cache := &cacheMock{getErr: derr.ErrRosterNotFound}
	repo := &repoMock{days: []models.DutyDay{twoLegDay()}}
	source := &sourceMock{}

	ttl := 10 * time.Minute
	svc := NewRosterService(zap.NewNop(), source, repo, cache, nil, ttl)
	days, err := svc.GetRoster(context.Background(), "crew-42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected archived roster, got %+v", days)
	}
	if source.calls != 0 {
		t.Fatalf("expected feed not called, got %d calls", source.calls)
	}
	if cache.setCalls != 1 || cache.lastTTL != ttl {
		t.Fatalf("expected cache refill with ttl %v, got %d calls ttl %v", ttl, cache.setCalls, cache.lastTTL)
	}
}

func TestGetRoster_FetchesAndStores(t *testing.T) {
	cache := &cacheMock{getErr: derr.ErrRosterNotFound}
	repo := &repoMock{loadErr: derr.ErrRosterNotFound}
	source := &sourceMock{days: []models.DutyDay{twoLegDay()}}

	svc := NewRosterService(zap.NewNop(), source, repo, cache, nil, 15*time.Minute)
	days, err := svc.GetRoster(context.Background(), "crew-42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected fetched roster, got %+v", days)
	}
	if source.calls != 1 || repo.replaceCalls != 1 || cache.setCalls != 1 {
		t.Fatalf("expected fetch+archive+cache, got source=%d replace=%d set=%d", source.calls, repo.replaceCalls, cache.setCalls)
	}
}

func TestGetRoster_SourceFail(t *testing.T) {
	cache := &cacheMock{getErr: derr.ErrRosterNotFound}
	repo := &repoMock{loadErr: derr.ErrRosterNotFound}
	source := &sourceMock{err: derr.ErrSourceUnavailable}

	svc := NewRosterService(zap.NewNop(), source, repo, cache, nil, 15*time.Minute)
	_, err := svc.GetRoster(context.Background(), "crew-42")
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if repo.replaceCalls != 0 || cache.setCalls != 0 {
		t.Fatalf("expected no writes on fetch failure, replace=%d set=%d", repo.replaceCalls, cache.setCalls)
	}
}

func TestRefreshRoster_BypassesCache(t *testing.T) {
	cache := &cacheMock{days: []models.DutyDay{{Label: "stale"}}}
	repo := &repoMock{}
	source := &sourceMock{days: []models.DutyDay{twoLegDay()}}

	svc := NewRosterService(zap.NewNop(), source, repo, cache, nil, 15*time.Minute)
	days, err := svc.RefreshRoster(context.Background(), "crew-42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cache.getCalls != 0 {
		t.Fatalf("expected cache read to be skipped, got %d calls", cache.getCalls)
	}
	if source.calls != 1 {
		t.Fatalf("expected feed call, got %d", source.calls)
	}
	if len(days) != 1 || days[0].Label != "Mon, 01Apr" {
		t.Fatalf("expected fresh roster, got %+v", days)
	}
}

func TestMonthView_TwoLegDay(t *testing.T) {
	source := &sourceMock{days: []models.DutyDay{twoLegDay()}}
	svc := NewRosterService(zap.NewNop(), source, nil, nil, nil, 0)

	view, err := svc.MonthView(context.Background(), "crew-42", 2025, time.April, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if view.State != models.StateReady {
		t.Fatalf("expected ready state, got %s", view.State)
	}
	if len(view.Cells)%7 != 0 {
		t.Fatalf("grid length %d is not a multiple of 7", len(view.Cells))
	}
	if view.Status != models.StatusMultipleFlights {
		t.Fatalf("expected multipleFlights, got %s", view.Status)
	}
	if view.Window.Start != "03:45" || view.Window.End != "12:10" {
		t.Fatalf("unexpected duty window: %+v", view.Window)
	}
	if len(view.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(view.Legs))
	}
	if view.Legs[0].Duration != "3 Hours 0 minutes" {
		t.Fatalf("unexpected duration: %q", view.Legs[0].Duration)
	}
	if view.Legs[1].DepartureStation != "WAW" || view.Legs[1].ArrivalStation != "AYT" {
		t.Fatalf("unexpected second leg: %+v", view.Legs[1])
	}

	if len(view.Week) != 7 {
		t.Fatalf("expected 7-cell week, got %d", len(view.Week))
	}
	found := false
	for _, c := range view.Week {
		if c.InMonth && c.Day == 1 {
			found = true
			if c.Status != models.StatusMultipleFlights {
				t.Fatalf("expected selected cell to carry status, got %s", c.Status)
			}
		}
	}
	if !found {
		t.Fatal("expected week slice to contain the selected date")
	}
}

func TestMonthView_FeedFailureDegradesToEmptyCalendar(t *testing.T) {
	source := &sourceMock{err: derr.ErrSourceUnavailable}
	svc := NewRosterService(zap.NewNop(), source, nil, nil, nil, 0)

	view, err := svc.MonthView(context.Background(), "crew-42", 2025, time.April, 5)
	if err != nil {
		t.Fatalf("expected degraded view, got error %v", err)
	}

	if view.State != models.StateError || view.Error == "" {
		t.Fatalf("expected error state with message, got %+v", view)
	}
	if len(view.Cells) == 0 || len(view.Cells)%7 != 0 {
		t.Fatalf("expected a full grid despite the failure, got %d cells", len(view.Cells))
	}
	for _, c := range view.Cells {
		if c.Status != models.StatusNone {
			t.Fatalf("expected all-none statuses, got %s on day %d", c.Status, c.Day)
		}
	}
	if view.Status != models.StatusNone || view.Window.Start != "" || len(view.Legs) != 0 {
		t.Fatalf("expected empty itinerary, got %+v", view)
	}
}

func TestMonthView_InvalidMonth(t *testing.T) {
	svc := NewRosterService(zap.NewNop(), &sourceMock{}, nil, nil, nil, 0)

	if _, err := svc.MonthView(context.Background(), "crew-42", 2025, time.Month(13), 1); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestDayView(t *testing.T) {
	day := twoLegDay()
	day.BlockHours = "05:55"
	source := &sourceMock{days: []models.DutyDay{day}}
	svc := NewRosterService(zap.NewNop(), source, nil, nil, nil, 0)

	view, err := svc.DayView(context.Background(), "crew-42", "2025-04-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.Found || view.Status != models.StatusMultipleFlights {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.BlockHours != "05:55" {
		t.Fatalf("expected aggregates carried through, got %+v", view)
	}

	missing, err := svc.DayView(context.Background(), "crew-42", "2025-04-20")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if missing.Found || missing.Status != models.StatusNone || len(missing.Legs) != 0 {
		t.Fatalf("expected empty day view, got %+v", missing)
	}

	if _, err := svc.DayView(context.Background(), "crew-42", "01-04-2025"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
