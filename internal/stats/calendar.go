package stats

import (
	"cmp"
	"slices"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Day is a local calendar date.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the local calendar date of t.
func DayOf(t time.Time) Day {
	y, m, d := t.Local().Date()
	return Day{Year: y, Month: m, Day: d}
}

// Time returns local midnight of the day.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.Time().Format("2006-01-02")
}

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the local calendar month of t.
func MonthOf(t time.Time) Month {
	y, m, _ := t.Local().Date()
	return Month{Year: y, Month: m}
}

// String formats the month the way report headings show it, e.g. "March 2025".
func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// Next returns the following month.
func (m Month) Next() Month {
	t := time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.Local)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	t := time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.Local)
	return Month{Year: t.Year(), Month: t.Month()}
}

func compareDays(a, b Day) int {
	return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month), cmp.Compare(a.Day, b.Day))
}

func compareMonths(a, b Month) int {
	return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
}

// GroupByDay buckets entries by local date. Each bucket is chronological
// and keeps every entry of that day.
func GroupByDay(entries []mood.Entry) map[Day][]mood.Entry {
	groups := make(map[Day][]mood.Entry)
	for _, e := range SortChronological(entries) {
		d := DayOf(e.Timestamp)
		groups[d] = append(groups[d], e)
	}
	return groups
}

// DayRepresentative picks the entry shown for a day with several entries:
// the last one in chronological order.
func DayRepresentative(bucket []mood.Entry) (mood.Entry, bool) {
	return Latest(bucket)
}

// Days returns the keys of groups in ascending order.
func Days(groups map[Day][]mood.Entry) []Day {
	days := make([]Day, 0, len(groups))
	for d := range groups {
		days = append(days, d)
	}
	slices.SortFunc(days, compareDays)
	return days
}

// GroupByMonth buckets entries by local calendar month.
func GroupByMonth(entries []mood.Entry) map[Month][]mood.Entry {
	groups := make(map[Month][]mood.Entry)
	for _, e := range SortChronological(entries) {
		m := MonthOf(e.Timestamp)
		groups[m] = append(groups[m], e)
	}
	return groups
}

// Months returns the keys of groups in ascending order.
func Months(groups map[Month][]mood.Entry) []Month {
	months := make([]Month, 0, len(groups))
	for m := range groups {
		months = append(months, m)
	}
	slices.SortFunc(months, compareMonths)
	return months
}

// MonthsDesc returns the keys of groups newest first.
func MonthsDesc(groups map[Month][]mood.Entry) []Month {
	months := Months(groups)
	slices.Reverse(months)
	return months
}

// Cell is one square of a month grid. Padding cells outside the month
// have Day 0.
type Cell struct {
	Day     int
	Entries []mood.Entry
}

// Representative returns the entry displayed in the cell.
func (c Cell) Representative() (mood.Entry, bool) {
	return DayRepresentative(c.Entries)
}

// Average returns the mean of every entry logged that day.
func (c Cell) Average() (float64, bool) {
	return Average(c.Entries)
}

// Calendar is a Monday-first month grid.
type Calendar struct {
	Month Month
	Weeks [][7]Cell
	// Entries holds every entry of the month in chronological order.
	Entries []mood.Entry
}

// Average is taken over all entries of the month, not only the cell
// representatives.
func (c Calendar) Average() (float64, bool) {
	return Average(c.Entries)
}

// DaysLogged counts the days of the month with at least one entry.
func (c Calendar) DaysLogged() int {
	n := 0
	for _, w := range c.Weeks {
		for _, cell := range w {
			if cell.Day > 0 && len(cell.Entries) > 0 {
				n++
			}
		}
	}
	return n
}

// MonthCalendar lays out the given month as weeks starting on Monday.
func MonthCalendar(entries []mood.Entry, m Month) Calendar {
	byDay := GroupByDay(entries)
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := (int(first.Weekday()) + 6) % 7

	cal := Calendar{Month: m, Entries: GroupByMonth(entries)[m]}
	var week [7]Cell
	col := offset
	for d := 1; d <= daysInMonth; d++ {
		week[col] = Cell{Day: d, Entries: byDay[Day{Year: m.Year, Month: m.Month, Day: d}]}
		col++
		if col == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = [7]Cell{}
			col = 0
		}
	}
	if col > 0 {
		cal.Weeks = append(cal.Weeks, week)
	}
	if cal.Entries == nil {
		cal.Entries = []mood.Entry{}
	}
	return cal
}
