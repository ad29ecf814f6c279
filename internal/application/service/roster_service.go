package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
	"github.com/CrewShift/roster-adapter/internal/domain/ports"
	"github.com/CrewShift/roster-adapter/internal/domain/schedule"
	"github.com/CrewShift/roster-adapter/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type RosterService struct {
	log      *zap.Logger
	source   ports.RosterSource
	repo     ports.RosterRepository
	cache    ports.RosterCache
	metrics  *metrics.Metrics
	cacheTTL time.Duration
}

func NewRosterService(log *zap.Logger, source ports.RosterSource, repo ports.RosterRepository, cache ports.RosterCache, m *metrics.Metrics, cacheTTL time.Duration) *RosterService {
	if log == nil {
		log = zap.NewNop()
	}

	return &RosterService{
		log:      log,
		source:   source,
		repo:     repo,
		cache:    cache,
		metrics:  m,
		cacheTTL: cacheTTL,
	}
}

// GetRoster loads a user's duty days: cache first, then the Postgres archive,
// then the live feed. A feed fetch that succeeds refreshes both stores.
func (s *RosterService) GetRoster(ctx context.Context, userID string) ([]models.DutyDay, error) {
	const op = "service.GetRoster"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("user_id", userID),
	)

	if s.cache != nil {
		days, err := s.cache.GetByUser(ctx, userID)
		if err == nil {
			logger.Debug("roster loaded from redis cache")
			if s.metrics != nil {
				s.metrics.CacheHits.Inc()
			}
			return days, nil
		}
		if !errors.Is(err, derr.ErrRosterNotFound) {
			logger.Warn("redis cache read failed", zap.Error(err))
		}
	}

	if s.repo != nil {
		days, err := s.repo.LoadByUser(ctx, userID)
		if err == nil {
			logger.Debug("roster loaded from archive")
			s.writeCache(ctx, logger, userID, days)
			return days, nil
		}
		if !errors.Is(err, derr.ErrRosterNotFound) {
			return nil, fmt.Errorf("%s: load roster from archive: %w", op, err)
		}
	}

	days, err := s.fetchAndStore(ctx, logger, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return days, nil
}

// RefreshRoster bypasses both stores and hits the feed. This backs the
// user-triggered retry, so a stale cache entry never masks a recovered feed.
func (s *RosterService) RefreshRoster(ctx context.Context, userID string) ([]models.DutyDay, error) {
	const op = "service.RefreshRoster"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("user_id", userID),
	)

	days, err := s.fetchAndStore(ctx, logger, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return days, nil
}

func (s *RosterService) fetchAndStore(ctx context.Context, logger *zap.Logger, userID string) ([]models.DutyDay, error) {
	start := time.Now()
	days, err := s.source.FetchByUser(ctx, userID)
	if s.metrics != nil {
		s.metrics.FeedFetches.Inc()
		s.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.FeedErrors.WithLabelValues(fetchErrorReason(err)).Inc()
		}
		return nil, fmt.Errorf("fetch roster from feed: %w", err)
	}

	if s.repo != nil {
		if err := s.repo.Replace(ctx, userID, days); err != nil {
			logger.Warn("roster archive write failed", zap.Error(err))
		}
	}
	s.writeCache(ctx, logger, userID, days)

	logger.Info("roster fetched from feed", zap.Int("days", len(days)))
	return days, nil
}

func (s *RosterService) writeCache(ctx context.Context, logger *zap.Logger, userID string, days []models.DutyDay) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, userID, days, s.cacheTTL); err != nil {
		logger.Warn("redis cache write failed", zap.Error(err))
	}
}

func fetchErrorReason(err error) string {
	switch {
	case errors.Is(err, derr.ErrSourceUnavailable):
		return "unavailable"
	case errors.Is(err, derr.ErrBadRosterFormat):
		return "format"
	default:
		return "other"
	}
}

// MonthView assembles the calendar screen payload for one month. A roster
// that cannot be loaded from anywhere degrades to an empty grid with
// State=error: the calendar always renders, the client shows the retry
// affordance.
func (s *RosterService) MonthView(ctx context.Context, userID string, year int, month time.Month, selectedDay int) (models.MonthView, error) {
	const op = "service.MonthView"
	tracer := otel.Tracer("roster-adapter/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("roster.user_id", userID),
		attribute.Int("roster.year", year),
		attribute.Int("roster.month", int(month)),
	)

	if month < time.January || month > time.December {
		span.SetStatus(otelcodes.Error, "invalid month")
		return models.MonthView{}, fmt.Errorf("%s: month %d out of range", op, month)
	}

	view := models.MonthView{
		UserID:      userID,
		Year:        year,
		Month:       int(month),
		SelectedDay: selectedDay,
		State:       models.StateReady,
	}

	days, err := s.GetRoster(ctx, userID)
	if err != nil {
		s.log.Warn("roster unavailable, rendering empty calendar",
			zap.String("op", op),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		span.RecordError(err)
		span.AddEvent("roster.fallback.empty")
		days = nil
		view.State = models.StateError
		view.Error = userFacingError(err)
	}

	grid := schedule.BuildMonthGrid(year, month)
	view.Cells = annotateCells(grid, days)

	weekStart, weekEnd := schedule.WeekBounds(grid, selectedDay)
	view.Week = view.Cells[weekStart:weekEnd]

	rec := schedule.FindDay(days, selectedDay, month)
	view.Status = schedule.Classify(days, selectedDay, month)
	view.Window = schedule.Window(rec)
	view.Legs = legViews(rec)

	span.SetStatus(otelcodes.Ok, "ok")
	return view, nil
}

// DayView assembles the itinerary payload for a single ISO date.
func (s *RosterService) DayView(ctx context.Context, userID, date string) (models.DayView, error) {
	const op = "service.DayView"
	tracer := otel.Tracer("roster-adapter/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("roster.user_id", userID),
		attribute.String("roster.date", date),
	)

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		span.SetStatus(otelcodes.Error, "invalid date")
		return models.DayView{}, fmt.Errorf("%s: parse date %q: %w", op, date, err)
	}

	view := models.DayView{
		UserID: userID,
		Date:   date,
		State:  models.StateReady,
	}

	days, err := s.GetRoster(ctx, userID)
	if err != nil {
		span.RecordError(err)
		days = nil
		view.State = models.StateError
		view.Error = userFacingError(err)
	}

	rec := schedule.FindDay(days, day.Day(), day.Month())
	view.Found = rec != nil
	view.Status = schedule.Classify(days, day.Day(), day.Month())
	view.Window = schedule.Window(rec)
	view.Legs = legViews(rec)
	if rec != nil {
		view.BlockHours = rec.BlockHours
		view.FlightDutyTime = rec.FlightDutyTime
		view.DutyTime = rec.DutyTime
		view.RestPeriod = rec.RestPeriod
	}

	span.SetStatus(otelcodes.Ok, "ok")
	return view, nil
}

func annotateCells(grid []schedule.CalendarCell, days []models.DutyDay) []models.CellView {
	cells := make([]models.CellView, 0, len(grid))
	for _, c := range grid {
		status := models.StatusNone
		if c.InMonth {
			status = schedule.Classify(days, c.Day, c.Month)
		}
		cells = append(cells, models.CellView{
			Day:     c.Day,
			Month:   int(c.Month),
			Year:    c.Year,
			InMonth: c.InMonth,
			Status:  status,
		})
	}
	return cells
}

func legViews(rec *models.DutyDay) []models.LegView {
	if rec == nil || len(rec.Flights) == 0 {
		return []models.LegView{}
	}

	legs := make([]models.LegView, 0, len(rec.Flights))
	for _, leg := range rec.Flights {
		duration, err := schedule.LegDuration(leg.DepartureTime, leg.ArrivalTime)
		if err != nil {
			duration = ""
		}
		legs = append(legs, models.LegView{FlightLeg: leg, Duration: duration})
	}
	return legs
}

func userFacingError(err error) string {
	switch {
	case errors.Is(err, derr.ErrSourceUnavailable):
		return "crew portal is unavailable, showing an empty roster"
	case errors.Is(err, derr.ErrBadRosterFormat):
		return "crew portal returned an unreadable roster"
	default:
		return "roster could not be loaded"
	}
}
