package cdk

import (
	"fmt"
	"time"

	"github.com/odvcencio/cdk/pkg/ui/backend"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// CalendarContent is what NewCalendar needs besides position and options.
// Zero date fields take today's value.
type CalendarContent struct {
	Title string
	Day   int
	Month time.Month
	Year  int
}

// date is a calendar day without a clock or zone.
type date struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) date {
	y, m, d := t.Date()
	return date{y, m, d}
}

func (d date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.Local)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths moves by n months, clamping the day to the target month.
func (d date) addMonths(n int) date {
	first := time.Date(d.year, d.month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	y, m, _ := first.Date()
	return date{y, m, min(d.day, daysIn(y, m))}
}

func (d date) addDays(n int) date {
	return dateOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

// Calendar shows one month and lets the user pick a day.
type Calendar struct {
	widget
	interactive

	title      string
	current    date
	dayStyle   backend.Style
	monthStyle backend.Style
	yearStyle  backend.Style
	highlight  backend.Style
	dayNames   [7]string
	weekStart  time.Weekday
	markers    map[date]backend.Style
	now        func() time.Time
}

// NewCalendar creates a calendar on c and registers it.
func NewCalendar(c *Canvas, at Position, content CalendarContent, opts DrawingOptions) (*Calendar, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}
	cal := &Calendar{
		title:      content.Title,
		dayStyle:   backend.DefaultStyle(),
		monthStyle: backend.DefaultStyle().Bold(true),
		yearStyle:  backend.DefaultStyle().Bold(true),
		highlight:  c.theme.Highlight,
		dayNames:   c.theme.DayNames,
		weekStart:  c.theme.WeekStart,
		markers:    make(map[date]backend.Style),
		now:        time.Now,
	}
	cal.SetDate(content.Year, content.Month, content.Day)

	if err := cal.attach(c, KindCalendar, cal, at, opts); err != nil {
		return nil, err
	}
	return cal, nil
}

func (c *Calendar) today() date {
	if c.now == nil {
		return dateOf(time.Now())
	}
	return dateOf(c.now())
}

// Date returns the selected day at local midnight.
func (c *Calendar) Date() time.Time {
	if c.current == (date{}) {
		return c.today().time()
	}
	return c.current.time()
}

// SetDate selects a day. Zero fields take today's value and the day is
// clamped to the month.
func (c *Calendar) SetDate(year int, month time.Month, day int) {
	t := c.today()
	if year == 0 {
		year = t.year
	}
	if month == 0 {
		month = t.month
	}
	if day == 0 {
		day = t.day
	}
	month = min(max(month, time.January), time.December)
	day = min(max(day, 1), daysIn(year, month))
	c.current = date{year, month, day}
}

func (c *Calendar) DayAttribute() backend.Style       { return c.dayStyle }
func (c *Calendar) SetDayAttribute(s backend.Style)   { c.dayStyle = s }
func (c *Calendar) MonthAttribute() backend.Style     { return c.monthStyle }
func (c *Calendar) SetMonthAttribute(s backend.Style) { c.monthStyle = s }
func (c *Calendar) YearAttribute() backend.Style      { return c.yearStyle }
func (c *Calendar) SetYearAttribute(s backend.Style)  { c.yearStyle = s }
func (c *Calendar) Highlight() backend.Style          { return c.highlight }
func (c *Calendar) SetHighlight(s backend.Style)      { c.highlight = s }
func (c *Calendar) Title() string                     { return c.title }
func (c *Calendar) SetTitle(s string)                 { c.title = s }

// SetDaysNames sets the weekday column headers, Sunday first. Anything but
// seven names is ignored.
func (c *Calendar) SetDaysNames(names []string) {
	if len(names) != 7 {
		return
	}
	copy(c.dayNames[:], names)
}

// DaysNames returns the weekday column headers, Sunday first.
func (c *Calendar) DaysNames() []string {
	return append([]string(nil), c.dayNames[:]...)
}

// SetWeekStart sets the weekday shown in the first column.
func (c *Calendar) SetWeekStart(d time.Weekday) { c.weekStart = d % 7 }

// SetMarker highlights the day of t with style. Only the date part of t is
// used.
func (c *Calendar) SetMarker(t time.Time, style backend.Style) {
	if c.markers == nil {
		c.markers = make(map[date]backend.Style)
	}
	c.markers[dateOf(t)] = style
}

// Marker returns the style set for the day of t, false when none is set.
func (c *Calendar) Marker(t time.Time) (backend.Style, bool) {
	s, ok := c.markers[dateOf(t)]
	return s, ok
}

// RemoveMarker clears the marker for the day of t.
func (c *Calendar) RemoveMarker(t time.Time) {
	delete(c.markers, dateOf(t))
}

// Activate runs the calendar until a day is confirmed or the calendar is
// abandoned. Confirming returns the day at local midnight, every other exit
// the zero time.
func (c *Calendar) Activate(keys ...terminal.KeyEvent) (time.Time, error) {
	return activate[time.Time](&c.widget, &c.interactive, calendarEditor{c}, keys)
}

type calendarEditor struct{ c *Calendar }

func (ed calendarEditor) begin() {
	if ed.c.current == (date{}) {
		ed.c.current = ed.c.today()
	}
}

func (ed calendarEditor) edit(key terminal.KeyEvent) editResult {
	c := ed.c
	switch {
	case key.Is(terminal.KeyLeft):
		c.current = c.current.addDays(-1)
	case key.Is(terminal.KeyRight):
		c.current = c.current.addDays(1)
	case key.Is(terminal.KeyUp):
		c.current = c.current.addDays(-7)
	case key.Is(terminal.KeyDown):
		c.current = c.current.addDays(7)
	case key.Is(terminal.KeyPageUp), key.IsRune('p'):
		c.current = c.current.addMonths(-1)
	case key.Is(terminal.KeyPageDown), key.IsRune('n'):
		c.current = c.current.addMonths(1)
	case key.IsRune('P'):
		c.current = c.current.addMonths(-12)
	case key.IsRune('N'):
		c.current = c.current.addMonths(12)
	case key.Is(terminal.KeyHome), key.IsRune('t'), key.IsRune('T'):
		c.current = c.today()
	default:
		return editIgnored
	}
	return editAccepted
}

func (ed calendarEditor) result(exit ExitType) time.Time {
	if exit != ExitNormal {
		return time.Time{}
	}
	return ed.c.current.time()
}

func (ed calendarEditor) display() string {
	return ed.c.current.time().Format(time.DateOnly)
}

// frame lays out a month grid: title, month and year header, weekday
// names, then up to six week rows of three-cell day columns.
func (c *Calendar) frame() Frame {
	f := c.baseFrame()
	cur := c.current
	if cur == (date{}) {
		cur = c.today()
	}

	if c.title != "" {
		f.Lines = append(f.Lines, TextLine(c.title))
	}

	month := cur.month.String()
	year := fmt.Sprintf("%d", cur.year)
	header := TextLine(fmt.Sprintf("%-*s%*s", 20-len(year), month, len(year), year))
	header.Spans = []Span{
		{Start: 0, End: len(month), Style: c.monthStyle},
		{Start: 20 - len(year), End: 20, Style: c.yearStyle},
	}
	f.Lines = append(f.Lines, header)

	names := ""
	for i := range 7 {
		n := c.dayNames[(int(c.weekStart)+i)%7]
		if r := []rune(n); len(r) > 2 {
			n = string(r[:2])
		}
		names += fmt.Sprintf("%-2s", n)
		if i < 6 {
			names += " "
		}
	}
	f.Lines = append(f.Lines, TextLine(names))

	first := time.Date(cur.year, cur.month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) - int(c.weekStart) + 7) % 7
	days := daysIn(cur.year, cur.month)

	for week := 0; week*7-offset < days; week++ {
		line := Line{Style: backend.DefaultStyle()}
		text := make([]byte, 0, 20)
		for col := range 7 {
			day := week*7 + col - offset + 1
			if col > 0 {
				text = append(text, ' ')
			}
			if day < 1 || day > days {
				text = append(text, ' ', ' ')
				continue
			}
			start := len(text)
			text = fmt.Appendf(text, "%2d", day)

			style := c.dayStyle
			if m, ok := c.markers[date{cur.year, cur.month, day}]; ok {
				style = m
			}
			if day == cur.day {
				style = c.highlight
			}
			line.Spans = append(line.Spans, Span{Start: start, End: start + 2, Style: style})
			if day == cur.day {
				f.Cursor = &Cursor{X: start + 1, Y: len(f.Lines)}
			}
		}
		line.Text = string(text)
		f.Lines = append(f.Lines, line)
	}
	return f
}
