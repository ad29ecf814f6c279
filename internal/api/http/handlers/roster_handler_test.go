package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

type viewsMock struct {
	monthView models.MonthView
	dayView   models.DayView
	days      []models.DutyDay
	err       error

	lastUserID string
	lastYear   int
	lastMonth  time.Month
	lastDay    int
	lastDate   string
	calls      int
}

func (m *viewsMock) MonthView(_ context.Context, userID string, year int, month time.Month, selectedDay int) (models.MonthView, error) {
	m.calls++
	m.lastUserID = userID
	m.lastYear = year
	m.lastMonth = month
	m.lastDay = selectedDay
	return m.monthView, m.err
}

func (m *viewsMock) DayView(_ context.Context, userID, date string) (models.DayView, error) {
	m.calls++
	m.lastUserID = userID
	m.lastDate = date
	return m.dayView, m.err
}

func (m *viewsMock) RefreshRoster(_ context.Context, userID string) ([]models.DutyDay, error) {
	m.calls++
	m.lastUserID = userID
	return m.days, m.err
}

func newCalendarRouter(views RosterViews) *chi.Mux {
	h := NewRosterHandler(zap.NewNop(), views, time.Second)
	r := chi.NewRouter()
	r.Get("/v1/roster/{userID}/calendar", h.GetCalendar)
	r.Get("/v1/roster/{userID}/days/{date}", h.GetDay)
	r.Post("/v1/roster/{userID}/refresh", h.Refresh)
	return r
}

func TestGetCalendar_PassesQueryParams(t *testing.T) {
	mock := &viewsMock{monthView: models.MonthView{State: models.StateReady}}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/calendar?year=2025&month=4&day=15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if mock.lastUserID != "crew-77" {
		t.Errorf("userID = %q, want crew-77", mock.lastUserID)
	}
	if mock.lastYear != 2025 || mock.lastMonth != time.April || mock.lastDay != 15 {
		t.Errorf("got %d-%d day %d, want 2025-4 day 15", mock.lastYear, mock.lastMonth, mock.lastDay)
	}

	var view models.MonthView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.State != models.StateReady {
		t.Errorf("state = %q, want ready", view.State)
	}
}

func TestGetCalendar_DefaultsToCurrentMonth(t *testing.T) {
	mock := &viewsMock{}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/calendar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	now := time.Now().UTC()
	if mock.lastYear != now.Year() || mock.lastMonth != now.Month() {
		t.Errorf("defaulted to %d-%d, want %d-%d", mock.lastYear, mock.lastMonth, now.Year(), now.Month())
	}
	if mock.lastDay != 1 {
		t.Errorf("default day = %d, want 1", mock.lastDay)
	}
}

func TestGetCalendar_RejectsBadMonth(t *testing.T) {
	mock := &viewsMock{}
	router := newCalendarRouter(mock)

	for _, query := range []string{"month=13", "month=0", "month=april", "year=99999", "day=32"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/calendar?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
		}
	}
	if mock.calls != 0 {
		t.Errorf("service called %d times on invalid input", mock.calls)
	}
}

func TestGetCalendar_ServiceError(t *testing.T) {
	mock := &viewsMock{err: errors.New("boom")}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/calendar", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestGetDay_ValidatesDate(t *testing.T) {
	mock := &viewsMock{}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/days/01-04-2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if mock.calls != 0 {
		t.Error("service called with malformed date")
	}
}

func TestGetDay_ReturnsView(t *testing.T) {
	mock := &viewsMock{dayView: models.DayView{
		State:  models.StateReady,
		Found:  true,
		Status: models.StatusSingleFlight,
	}}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/v1/roster/crew-77/days/2025-04-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if mock.lastDate != "2025-04-01" {
		t.Errorf("date = %q, want 2025-04-01", mock.lastDate)
	}

	var view models.DayView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !view.Found || view.Status != models.StatusSingleFlight {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestRefresh_ReportsDayCount(t *testing.T) {
	mock := &viewsMock{days: make([]models.DutyDay, 3)}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/v1/roster/crew-77/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		State string `json:"state"`
		Days  int    `json:"days"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.State != models.StateReady || payload.Days != 3 {
		t.Errorf("payload = %+v, want ready/3", payload)
	}
}

func TestRefresh_FeedFailure(t *testing.T) {
	mock := &viewsMock{err: derr.ErrSourceUnavailable}
	router := newCalendarRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/v1/roster/crew-77/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
