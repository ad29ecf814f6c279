package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// LegDuration computes the elapsed time between two HH:MM clock readings,
// wrapping once at midnight, and renders it in the fixed template the app
// displays ("3 Hours 0 minutes"). An arrival exactly 24h after departure is
// indistinguishable from zero elapsed; the feed never carries multi-day legs.
func LegDuration(depTime, arrTime string) (string, error) {
	depHour, depMin, err := parseClock(depTime)
	if err != nil {
		return "", fmt.Errorf("parse departure time: %w", err)
	}
	arrHour, arrMin, err := parseClock(arrTime)
	if err != nil {
		return "", fmt.Errorf("parse arrival time: %w", err)
	}

	hours := arrHour - depHour
	minutes := arrMin - depMin
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
	}

	return fmt.Sprintf("%d Hours %d minutes", hours, minutes), nil
}

func parseClock(value string) (int, int, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed clock value %q", value)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock value %q", value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock value %q", value)
	}

	return hour, minute, nil
}
