// Package report contains financial report aggregation use cases.
package report

import "time"

// DayWindow returns the inclusive bounds of one calendar day in the date's
// location: [00:00:00.000, 23:59:59.999].
func DayWindow(date time.Time) (start, end time.Time) {
	loc := date.Location()
	start = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// MonthWindow returns the inclusive bounds of a calendar month.
func MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// YearWindow returns the inclusive bounds of a calendar year.
func YearWindow(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(1, 0, 0).Add(-time.Millisecond)
	return start, end
}

// QuarterWindow returns the inclusive bounds of the calendar quarter
// containing the given date. Quarter numbering follows (month-1)/3 + 1.
func QuarterWindow(date time.Time) (start, end time.Time) {
	quarter := (int(date.Month()) - 1) / 3
	start = time.Date(date.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 3, 0).Add(-time.Millisecond)
	return start, end
}

// PreviousMonth returns the year and month immediately before the given one.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}
