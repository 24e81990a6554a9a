package calendar

import "time"

// WeekendDay is the company's fixed weekly day off. The weekend is not
// data-driven: holiday rows with a WEEKEND category are informational
// duplicates and carry no extra meaning here.
const WeekendDay = time.Friday

const dateLayout = "2006-01-02"

// DateOnly normalizes t to midnight UTC so calendar arithmetic never
// crosses day boundaries because of wall-clock components.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HolidaySet indexes holidays by their YYYY-MM-DD date string.
type HolidaySet map[string]Holiday

func NewHolidaySet(holidays []Holiday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[DateOnly(h.HolidayDate).Format(dateLayout)] = h
	}
	return set
}

func (s HolidaySet) Contains(d time.Time) bool {
	_, ok := s[DateOnly(d).Format(dateLayout)]
	return ok
}

// IsWorkingDay reports whether d counts as a working day: any day that is
// neither the fixed weekend day nor present in the holiday set.
func IsWorkingDay(d time.Time, holidays HolidaySet) bool {
	if d.Weekday() == WeekendDay {
		return false
	}
	return !holidays.Contains(d)
}

// CountWorkingDays counts working days in [start, end], inclusive of both
// endpoints. start after end yields 0.
func CountWorkingDays(start, end time.Time, holidays HolidaySet) int {
	start, end = DateOnly(start), DateOnly(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, holidays) {
			count++
		}
	}
	return count
}

// MonthBounds returns the first and last calendar day of (month, year).
func MonthBounds(month time.Month, year int) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func WorkingDaysInMonth(month time.Month, year int, holidays HolidaySet) int {
	first, last := MonthBounds(month, year)
	return CountWorkingDays(first, last, holidays)
}

// WorkingDaysListInMonth returns the month's working days in ascending order.
func WorkingDaysListInMonth(month time.Month, year int, holidays HolidaySet) []time.Time {
	first, last := MonthBounds(month, year)
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, holidays) {
			days = append(days, d)
		}
	}
	return days
}

// OverlapWorkingDays counts the working days in the intersection of the span
// [leaveStart, leaveEnd] with (month, year). A multi-month leave therefore
// contributes only its own slice to each month it touches.
func OverlapWorkingDays(leaveStart, leaveEnd time.Time, month time.Month, year int, holidays HolidaySet) int {
	first, last := MonthBounds(month, year)

	overlapStart := DateOnly(leaveStart)
	if overlapStart.Before(first) {
		overlapStart = first
	}
	overlapEnd := DateOnly(leaveEnd)
	if overlapEnd.After(last) {
		overlapEnd = last
	}

	if overlapStart.After(overlapEnd) {
		return 0
	}
	return CountWorkingDays(overlapStart, overlapEnd, holidays)
}
