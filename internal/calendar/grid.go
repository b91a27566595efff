package calendar

import (
	"time"

	"github.com/MrJamesThe3rd/paycal/internal/expense"
	"github.com/MrJamesThe3rd/paycal/internal/payday"
)

// Day is one cell of the month grid.
type Day struct {
	Date    time.Time
	Entries []Entry
	Payday  bool
	Today   bool
}

// Grid lays a month out Sunday-first. Offset is the number of blank cells
// before day 1.
type Grid struct {
	Month  expense.Month
	Offset int
	Days   []Day
}

// BuildGrid places every expense on the days it occurs in month m. Entries
// within a day keep the order of expenses.
func BuildGrid(expenses []*expense.Expense, m expense.Month, overrides expense.Overrides, paydays payday.Set, today time.Time) Grid {
	g := Grid{
		Month:  m,
		Offset: int(m.First().Weekday()),
		Days:   make([]Day, m.Days()),
	}

	for i := range g.Days {
		date := m.Date(i + 1)
		g.Days[i] = Day{
			Date:   date,
			Payday: paydays.Contains(date),
			Today:  sameDay(date, today),
		}
	}

	for _, e := range expenses {
		day, ok := e.Occurrence(m)
		if !ok {
			continue
		}

		g.Days[day-1].Entries = append(g.Days[day-1].Entries, NewEntry(e, m, overrides))
	}

	return g
}

// Weeks splits the grid into rows of seven cells. Blank cells are nil.
func (g Grid) Weeks() [][]*Day {
	cells := make([]*Day, g.Offset, g.Offset+len(g.Days))
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}

	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return weeks
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
