package widget

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Day is one cell of the calendar grid.
type Day struct {
	Date     time.Time
	InMonth  bool
	Today    bool
	Selected bool
	Disabled bool
}

// DatePicker models the calendar dropdown: a Monday-start grid of whole
// weeks around the shown month, with every day before today disabled.
// It owns only its own open/closed state.
type DatePicker struct {
	Open     bool
	Selected string // "YYYY-MM-DD", empty until a selection is made

	today time.Time // date-granular
	month time.Time // first day of the shown month
}

func NewDatePicker(now time.Time) *DatePicker {
	today := truncateToDay(now)
	return &DatePicker{
		today: today,
		month: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()),
	}
}

func (p *DatePicker) Toggle() { p.Open = !p.Open }
func (p *DatePicker) Close()  { p.Open = false }

// Month returns the first day of the month the grid shows.
func (p *DatePicker) Month() time.Time { return p.month }

// ShowMonth moves the grid to the month containing t.
func (p *DatePicker) ShowMonth(t time.Time) {
	p.month = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.today.Location())
}

// NextMonth and PrevMonth step by true calendar months. The original UI
// jumped by 31 days, which skids across short months; that was an accident,
// not a contract, so it is corrected here.
func (p *DatePicker) NextMonth() { p.month = p.month.AddDate(0, 1, 0) }
func (p *DatePicker) PrevMonth() { p.month = p.month.AddDate(0, -1, 0) }

// Disabled reports whether d falls strictly before today.
func (p *DatePicker) Disabled(d time.Time) bool {
	return truncateToDay(d).Before(p.today)
}

// Select picks a day, formats it, and closes the panel. Disabled days are
// rejected.
func (p *DatePicker) Select(d time.Time) bool {
	if p.Disabled(d) {
		return false
	}
	p.Selected = truncateToDay(d).Format(DateLayout)
	p.Open = false
	return true
}

// SelectToday is the "today" shortcut button.
func (p *DatePicker) SelectToday() { p.Select(p.today) }

// Days returns the visible grid: whole Monday-start weeks covering the shown
// month, so the slice length is always a multiple of 7.
func (p *DatePicker) Days() []Day {
	monthEnd := p.month.AddDate(0, 1, -1)
	start := startOfWeek(p.month)
	end := startOfWeek(monthEnd).AddDate(0, 0, 6)

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:     d,
			InMonth:  d.Month() == p.month.Month(),
			Today:    d.Equal(p.today),
			Selected: p.Selected != "" && d.Format(DateLayout) == p.Selected,
			Disabled: p.Disabled(d),
		})
	}
	return days
}

// WeekDays are the grid column headers, Monday first.
func WeekDays() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	d := truncateToDay(t)
	// Monday week start
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
