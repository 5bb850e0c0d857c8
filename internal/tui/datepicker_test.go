package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pickerNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func press(p DatePicker, msgs ...tea.KeyMsg) (DatePicker, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		p, cmd = p.Update(msg)
	}
	return p, cmd
}

func TestDatePicker_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want time.Time
	}{
		{"opens at midnight of the selected day", nil, day(2026, 10, 19)},
		{"right moves a day", []tea.KeyMsg{{Type: tea.KeyRight}}, day(2026, 10, 20)},
		{"left moves back a day", []tea.KeyMsg{{Type: tea.KeyLeft}}, day(2026, 10, 18)},
		{"down moves a week", []tea.KeyMsg{{Type: tea.KeyDown}}, day(2026, 10, 26)},
		{"up moves back a week", []tea.KeyMsg{{Type: tea.KeyUp}}, day(2026, 10, 12)},
		{"pgdown moves a month", []tea.KeyMsg{{Type: tea.KeyPgDown}}, day(2026, 11, 19)},
		{"pgup moves back a month", []tea.KeyMsg{{Type: tea.KeyPgUp}}, day(2026, 9, 19)},
		{
			"t returns to today",
			[]tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyRunes, Runes: []rune("t")}},
			day(2026, 10, 19),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDatePicker(DefaultKeyMap()).Open(pickerNow, pickerNow)
			p, cmd := press(p, tt.keys...)
			assert.Nil(t, cmd)
			assert.True(t, p.Visible())
			assert.Equal(t, tt.want, p.Cursor())
		})
	}
}

func TestDatePicker_MonthClampsDay(t *testing.T) {
	p := NewDatePicker(DefaultKeyMap()).Open(day(2027, 1, 31), pickerNow)
	p, _ = press(p, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, day(2027, 2, 28), p.Cursor())
}

func TestDatePicker_EnterConfirms(t *testing.T) {
	p := NewDatePicker(DefaultKeyMap()).Open(pickerNow, pickerNow)
	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, p.Visible())
	require.NotNil(t, cmd)
	result, ok := cmd().(PickerResultMsg)
	require.True(t, ok)
	require.NotNil(t, result.Date)
	assert.Equal(t, day(2026, 10, 20), *result.Date)
}

func TestDatePicker_EscCancels(t *testing.T) {
	p := NewDatePicker(DefaultKeyMap()).Open(pickerNow, pickerNow)
	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, p.Visible())
	require.NotNil(t, cmd)
	result, ok := cmd().(PickerResultMsg)
	require.True(t, ok)
	assert.Nil(t, result.Date)
}

func TestDatePicker_HiddenIgnoresKeys(t *testing.T) {
	p := NewDatePicker(DefaultKeyMap())
	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, p.Visible())
}

func TestDatePicker_View(t *testing.T) {
	view := NewDatePicker(DefaultKeyMap()).Open(pickerNow, pickerNow).View()
	assert.Contains(t, view, "October 2026")
	assert.Contains(t, view, "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, view, "31")
}
