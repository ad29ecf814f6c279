package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// intQuery reads an integer query parameter, returning fallback when absent
// and ok=false when present but not a positive integer within [min, max].
func intQuery(r *http.Request, key string, fallback, min, max int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, true
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < min || parsed > max {
		return 0, false
	}

	return parsed, true
}
