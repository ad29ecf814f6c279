package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	derr "github.com/CrewShift/roster-adapter/internal/domain/errors"
	"github.com/CrewShift/roster-adapter/internal/domain/models"
)

// StayLookup resolves layover arrangements by station code.
type StayLookup interface {
	GetByStation(ctx context.Context, station string) (models.StayInfo, error)
}

type StayHandler struct {
	log   *zap.Logger
	stays StayLookup
}

func NewStayHandler(log *zap.Logger, stays StayLookup) *StayHandler {
	return &StayHandler{log: log, stays: stays}
}

// GetStay serves /v1/stays/{station} with an IATA station code.
func (h *StayHandler) GetStay(w http.ResponseWriter, r *http.Request) {
	station := strings.TrimSpace(chi.URLParam(r, "station"))
	if station == "" {
		writeError(w, http.StatusBadRequest, "station is required")
		return
	}

	stay, err := h.stays.GetByStation(r.Context(), station)
	if err != nil {
		if errors.Is(err, derr.ErrStayNotFound) {
			writeError(w, http.StatusNotFound, "no stay arranged for this station")
			return
		}
		h.log.Error("stay lookup failed", zap.Error(err), zap.String("station", station))
		writeError(w, http.StatusInternalServerError, "failed to load stay info")
		return
	}

	writeJSON(w, http.StatusOK, stay)
}
