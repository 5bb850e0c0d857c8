package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PickerResultMsg is emitted when the date picker closes.
// A nil Date means the user dismissed it without choosing.
type PickerResultMsg struct {
	Date *time.Time
}

// DatePicker is a modal month calendar
type DatePicker struct {
	keys    KeyMap
	cursor  time.Time // highlighted day, midnight
	today   time.Time
	visible bool
}

// NewDatePicker creates a hidden picker
func NewDatePicker(keys KeyMap) DatePicker {
	return DatePicker{keys: keys}
}

// Open shows the picker with the given date highlighted
func (p DatePicker) Open(selected, now time.Time) DatePicker {
	p.cursor = midnight(selected)
	p.today = midnight(now)
	p.visible = true
	return p
}

// Visible reports whether the picker is shown
func (p DatePicker) Visible() bool {
	return p.visible
}

// Cursor returns the highlighted day
func (p DatePicker) Cursor() time.Time {
	return p.cursor
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Update moves the cursor; enter and esc close the picker and emit a
// PickerResultMsg
func (p DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.visible {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Enter):
		p.visible = false
		date := p.cursor
		return p, func() tea.Msg { return PickerResultMsg{Date: &date} }
	case key.Matches(keyMsg, p.keys.Cancel):
		p.visible = false
		return p, func() tea.Msg { return PickerResultMsg{} }
	case key.Matches(keyMsg, p.keys.PrevDay):
		p.cursor = p.cursor.AddDate(0, 0, -1)
	case key.Matches(keyMsg, p.keys.NextDay):
		p.cursor = p.cursor.AddDate(0, 0, 1)
	case key.Matches(keyMsg, p.keys.PrevWeek):
		p.cursor = p.cursor.AddDate(0, 0, -7)
	case key.Matches(keyMsg, p.keys.NextWeek):
		p.cursor = p.cursor.AddDate(0, 0, 7)
	case key.Matches(keyMsg, p.keys.PrevMonth):
		p.cursor = addMonthsClamped(p.cursor, -1)
	case key.Matches(keyMsg, p.keys.NextMonth):
		p.cursor = addMonthsClamped(p.cursor, 1)
	case key.Matches(keyMsg, p.keys.Today):
		p.cursor = p.today
	}

	return p, nil
}

// addMonthsClamped moves by whole months, clamping 31 Jan + 1 month to 28/29 Feb
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(t.Day(), lastDay)-1)
}

// View renders the month grid
func (p DatePicker) View() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	weekdayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	todayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true)
	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccentMain)).
		Foreground(lipgloss.Color("#000000")).
		Bold(true)

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", p.cursor.Month(), p.cursor.Year())))
	b.WriteString("\n\n")
	b.WriteString(weekdayStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	first := time.Date(p.cursor.Year(), p.cursor.Month(), 1, 0, 0, 0, 0, p.cursor.Location())
	// Monday-first offset
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%2d", day)

		switch {
		case date.Equal(p.cursor):
			cell = cursorStyle.Render(cell)
		case date.Equal(p.today):
			cell = todayStyle.Render(cell)
		default:
			cell = dayStyle.Render(cell)
		}
		b.WriteString(cell)

		if (offset+day)%7 == 0 {
			b.WriteString("\n")
		} else if day < daysInMonth {
			b.WriteString(" ")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(weekdayStyle.Render("Selected: " + p.cursor.Format("Mon 02 Jan 2006")))

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1, 2)

	return modalStyle.Render(b.String())
}
