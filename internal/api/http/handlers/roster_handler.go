package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

// RosterViews is the slice of the roster service the HTTP layer needs.
type RosterViews interface {
	MonthView(ctx context.Context, userID string, year int, month time.Month, selectedDay int) (models.MonthView, error)
	DayView(ctx context.Context, userID, date string) (models.DayView, error)
	RefreshRoster(ctx context.Context, userID string) ([]models.DutyDay, error)
}

type RosterHandler struct {
	log     *zap.Logger
	views   RosterViews
	timeout time.Duration
}

func NewRosterHandler(log *zap.Logger, views RosterViews, timeout time.Duration) *RosterHandler {
	return &RosterHandler{log: log, views: views, timeout: timeout}
}

// GetCalendar serves /v1/roster/{userID}/calendar?year=&month=&day=.
// Year and month default to the current UTC month, day to 1.
func (h *RosterHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userID is required")
		return
	}

	now := time.Now().UTC()
	year, ok := intQuery(r, "year", now.Year(), 1970, 2100)
	if !ok {
		writeError(w, http.StatusBadRequest, "year must be a four-digit year")
		return
	}
	month, ok := intQuery(r, "month", int(now.Month()), 1, 12)
	if !ok {
		writeError(w, http.StatusBadRequest, "month must be in 1..12")
		return
	}
	day, ok := intQuery(r, "day", 1, 1, 31)
	if !ok {
		writeError(w, http.StatusBadRequest, "day must be in 1..31")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.views.MonthView(ctx, userID, year, time.Month(month), day)
	if err != nil {
		h.log.Error("month view failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("year", year),
			zap.Int("month", month),
		)
		writeError(w, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetDay serves /v1/roster/{userID}/days/{date} with an ISO date.
func (h *RosterHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	date := strings.TrimSpace(chi.URLParam(r, "date"))
	if userID == "" || date == "" {
		writeError(w, http.StatusBadRequest, "userID and date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "date must be an ISO date, example: 2025-04-01")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.views.DayView(ctx, userID, date)
	if err != nil {
		h.log.Error("day view failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("date", date),
		)
		writeError(w, http.StatusInternalServerError, "failed to build itinerary")
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Refresh serves POST /v1/roster/{userID}/refresh, the user-triggered retry:
// it bypasses the cache and hits the feed directly.
func (h *RosterHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	days, err := h.views.RefreshRoster(ctx, userID)
	if err != nil {
		h.log.Error("roster refresh failed",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		writeError(w, http.StatusBadGateway, "crew portal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": models.StateReady,
		"days":  len(days),
	})
}
