package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m CalendarModel, keys ...string) CalendarModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(CalendarModel)
	}

	return m
}

func TestCalendarModel_Navigation(t *testing.T) {
	start := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		keys      []string
		wantMonth expense.Month
		wantDay   int
	}{
		{name: "NextDayCrossesMonth", keys: []string{"right"}, wantMonth: expense.Month{Year: 2025, Month: time.February}, wantDay: 1},
		{name: "WeekBack", keys: []string{"up"}, wantMonth: expense.Month{Year: 2025, Month: time.January}, wantDay: 24},
		{name: "NextMonthClampsDay", keys: []string{"]"}, wantMonth: expense.Month{Year: 2025, Month: time.February}, wantDay: 28},
		{name: "PrevMonthAcrossYear", keys: []string{"["}, wantMonth: expense.Month{Year: 2024, Month: time.December}, wantDay: 31},
		{name: "VimKeys", keys: []string{"h", "h", "k"}, wantMonth: expense.Month{Year: 2025, Month: time.January}, wantDay: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewCalendarModel(Services{}, start), tt.keys...)

			assert.Equal(t, tt.wantMonth, m.month)
			assert.Equal(t, tt.wantDay, m.day)
		})
	}
}

func TestCalendarModel_EntryCursor(t *testing.T) {
	june := expense.Month{Year: 2025, Month: time.June}
	rent := &expense.Expense{Name: "Rent", Currency: expense.CurrencyEUR, Schedule: expense.Recurring{Day: 1}}
	gym := &expense.Expense{Name: "Gym", Currency: expense.CurrencyEUR, Schedule: expense.Recurring{Day: 1}}

	m := NewCalendarModel(Services{}, june.Date(1))
	next, _ := m.Update(calendarLoadedMsg{view: &calendar.View{
		Month: june,
		Grid:  calendar.BuildGrid([]*expense.Expense{rent, gym}, june, nil, nil, june.Date(1)),
	}})
	m = next.(CalendarModel)

	e, ok := m.selectedEntry()
	assert.True(t, ok)
	assert.Equal(t, "Rent", e.Expense.Name)

	m = press(m, "tab")
	e, _ = m.selectedEntry()
	assert.Equal(t, "Gym", e.Expense.Name)

	m = press(m, "tab")
	e, _ = m.selectedEntry()
	assert.Equal(t, "Rent", e.Expense.Name)

	m = press(m, "right")
	_, ok = m.selectedEntry()
	assert.False(t, ok, "June 2nd has no expenses")
}

func TestCalendarModel_Back(t *testing.T) {
	_, cmd := NewCalendarModel(Services{}, time.Now()).Update(key("esc"))
	if assert.NotNil(t, cmd) {
		assert.Equal(t, BackMsg{}, cmd())
	}
}
