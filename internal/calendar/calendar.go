package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// CALENDAR RULES
// =============================================================================
// Business days are Monday through Friday. Saturday classes are paid through
// the weekly hours, never through the business day count.
//
// Monetary math uses the unrounded weeks of a month (days / 7). The
// "N semanas e M dias" label is for display only and is allowed to disagree.
// =============================================================================

const DaysPerWeek = 7

// Month identifies a calendar month. The zero value means no month is selected.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, use YYYY-MM (e.g., 2025-01)", s)
	}
	return MonthOf(t), nil
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// First returns midnight UTC of the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IsBusinessDay returns true if the given day is a weekday (Mon-Fri)
func IsBusinessDay(t time.Time) bool {
	day := t.Weekday()
	return day >= time.Monday && day <= time.Friday
}

// DaysInMonth returns the number of calendar days in m.
func DaysInMonth(m Month) int {
	if m.IsZero() {
		return 0
	}
	return m.First().AddDate(0, 1, -1).Day()
}

// BusinessDays walks every day of m and counts the weekdays. The walk ends on
// the last day, whose next increment rolls into the following month.
func BusinessDays(m Month) int {
	if m.IsZero() {
		return 0
	}
	first := m.First()
	count := 0
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if IsBusinessDay(day) {
			count++
		}
	}
	return count
}

// WeeksInMonth returns days/7 without rounding.
func WeeksInMonth(m Month) float64 {
	return float64(DaysInMonth(m)) / DaysPerWeek
}

// SplitWeeks decomposes a day count into full weeks and leftover days.
func SplitWeeks(days int) (fullWeeks, remainingDays int) {
	return days / DaysPerWeek, days % DaysPerWeek
}

// Summary holds the calendar-derived figures of a month.
type Summary struct {
	Month         Month   `json:"month"`
	DaysInMonth   int     `json:"days_in_month"`
	BusinessDays  int     `json:"business_days"`
	FullWeeks     int     `json:"full_weeks"`
	RemainingDays int     `json:"remaining_days"`
	Weeks         float64 `json:"weeks"`
}

func Summarize(m Month) Summary {
	days := DaysInMonth(m)
	full, rest := SplitWeeks(days)
	return Summary{
		Month:         m,
		DaysInMonth:   days,
		BusinessDays:  BusinessDays(m),
		FullWeeks:     full,
		RemainingDays: rest,
		Weeks:         WeeksInMonth(m),
	}
}

// WeeksLabel renders the display form, e.g. "4 semanas e 2 dias".
func (s Summary) WeeksLabel() string {
	label := plural(s.FullWeeks, "semana", "semanas")
	if s.RemainingDays > 0 {
		label += " e " + plural(s.RemainingDays, "dia", "dias")
	}
	return label
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
