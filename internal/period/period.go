// Package period provides pure calendar helpers for the month and week
// selectors: enumerating months across the reporting range and carving a
// month into calendar weeks aligned to the shop's week start.
package period

import (
	"fmt"
	"strings"
	"time"
)

// YearMonth identifies a calendar month (year + month, no day).
type YearMonth struct {
	Year  int
	Month time.Month
}

// WeekRange is a contiguous 7-day span aligned to the configured week
// start. Index is the 1-based ordinal within the month; Start and End are
// inclusive calendar dates.
type WeekRange struct {
	Index int
	Start time.Time
	End   time.Time
}

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// ParseYearMonth parses a "YYYY-MM" identifier.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Label returns the month selector label, e.g. "กรกฎาคม 2025".
func (ym YearMonth) Label() string {
	return thaiMonths[int(ym.Month)-1] + " " + fmt.Sprintf("%d", ym.Year)
}

// ShortLabel returns the bar-chart axis label, e.g. "07/25".
func (ym YearMonth) ShortLabel() string {
	return fmt.Sprintf("%02d/%02d", int(ym.Month), ym.Year%100)
}

// Time returns midnight UTC on the first day of the month.
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (ym YearMonth) Next() YearMonth {
	return YearMonthOf(ym.Time().AddDate(0, 1, 0))
}

func (ym YearMonth) After(o YearMonth) bool {
	return ym.Year > o.Year || (ym.Year == o.Year && ym.Month > o.Month)
}

// MonthsInRange enumerates every month between from and to inclusive,
// most recent first (selection-list order).
func MonthsInRange(from, to YearMonth) []YearMonth {
	if from.After(to) {
		return nil
	}
	var months []YearMonth
	for m := from; !m.After(to); m = m.Next() {
		months = append(months, m)
	}
	for i, j := 0, len(months)-1; i < j; i, j = i+1, j-1 {
		months[i], months[j] = months[j], months[i]
	}
	return months
}

// WeeksInMonth partitions the month into calendar weeks, from the week
// touching the 1st through the week touching the last day. The first
// start is on or before the 1st, the last end on or after the last day,
// with no gaps or overlaps in between.
func WeeksInMonth(ym YearMonth, weekStart time.Weekday) []WeekRange {
	first := ym.Time()
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first, weekStart)
	var weeks []WeekRange
	for i := 1; !start.After(last); i++ {
		weeks = append(weeks, WeekRange{
			Index: i,
			Start: start,
			End:   start.AddDate(0, 0, 6),
		})
		start = start.AddDate(0, 0, 7)
	}
	return weeks
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -back)
}

// StartISO returns the inclusive start date in ISO form.
func (w WeekRange) StartISO() string {
	return w.Start.Format("2006-01-02")
}

// EndISO returns the inclusive end date in ISO form.
func (w WeekRange) EndISO() string {
	return w.End.Format("2006-01-02")
}

// Value is the selector value for the week, "start_end" in ISO dates.
func (w WeekRange) Value() string {
	return w.StartISO() + "_" + w.EndISO()
}

// Label returns the selector label, e.g. "สัปดาห์ที่ 2 (6/7 - 12/7)".
func (w WeekRange) Label() string {
	return fmt.Sprintf("สัปดาห์ที่ %d (%d/%d - %d/%d)",
		w.Index, w.Start.Day(), int(w.Start.Month()), w.End.Day(), int(w.End.Month()))
}

// ParseWeekValue splits a week selector value into its ISO start and end
// dates. An empty or malformed value yields ok=false, which callers treat
// as "no week selected".
func ParseWeekValue(v string) (start, end string, ok bool) {
	parts := strings.SplitN(v, "_", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	for _, p := range parts {
		if _, err := time.Parse("2006-01-02", p); err != nil {
			return "", "", false
		}
	}
	return parts[0], parts[1], true
}

// ParseWeekday maps a config value to a week start day.
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("unsupported week start %q", s)
}
