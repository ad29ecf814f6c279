// Package schedule derives calendar and duty views from a crew roster: the
// month grid, per-date duty classification, duty windows and leg durations.
// Everything here is pure; malformed input degrades to empty defaults so the
// calendar always renders.
package schedule

import "time"

// CalendarCell is one grid position. Adjacent-month padding cells carry their
// real year/month and InMonth=false.
type CalendarCell struct {
	Day     int
	Month   time.Month
	Year    int
	InMonth bool
}

// BuildMonthGrid generates the full grid for a month: leading cells from the
// previous month's tail so the first row starts on Monday, days 1..N of the
// month itself, and trailing next-month cells completing the last row. The
// result length is always a multiple of 7.
func BuildMonthGrid(year int, month time.Month) []CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// time.Weekday has Sunday=0; the grid runs Monday..Sunday.
	lead := (int(first.Weekday()) + 6) % 7

	daysInMonth := first.AddDate(0, 1, -1).Day()
	cells := make([]CalendarCell, 0, lead+daysInMonth+6)

	prevLast := first.AddDate(0, 0, -1)
	for i := lead - 1; i >= 0; i-- {
		d := prevLast.AddDate(0, 0, -i)
		cells = append(cells, CalendarCell{Day: d.Day(), Month: d.Month(), Year: d.Year()})
	}

	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, CalendarCell{Day: d, Month: month, Year: year, InMonth: true})
	}

	tail := (7 - len(cells)%7) % 7
	next := first.AddDate(0, 1, 0)
	for i := 0; i < tail; i++ {
		d := next.AddDate(0, 0, i)
		cells = append(cells, CalendarCell{Day: d.Day(), Month: d.Month(), Year: d.Year()})
	}

	return cells
}

// WeekBounds locates the 7-cell-aligned row containing the selected in-month
// day and returns its [start, end) indexes. When the day is not on the grid
// the first row is returned.
func WeekBounds(grid []CalendarCell, selectedDay int) (int, int) {
	if len(grid) < 7 {
		return 0, len(grid)
	}

	idx := -1
	for i, c := range grid {
		if c.InMonth && c.Day == selectedDay {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, 7
	}

	start := idx - idx%7
	return start, start + 7
}

// CurrentWeek returns the grid row containing the selected day.
func CurrentWeek(grid []CalendarCell, selectedDay int) []CalendarCell {
	start, end := WeekBounds(grid, selectedDay)
	return grid[start:end]
}
