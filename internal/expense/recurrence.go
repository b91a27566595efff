package expense

import "time"

// Occurrence returns the day of month m on which e falls due.
//
// A recurring expense anchored to a day the month does not have (31 in April,
// 30 in February) has no occurrence that month. It is skipped, not clamped.
func (e *Expense) Occurrence(m Month) (int, bool) {
	switch s := e.Schedule.(type) {
	case OneTime:
		if MonthOf(s.Date) != m {
			return 0, false
		}

		return s.Date.Day(), true
	case Recurring:
		if !s.ActiveIn(m) || s.Day < 1 || s.Day > m.Days() {
			return 0, false
		}

		return s.Day, true
	}

	return 0, false
}

// OccursOn reports whether e falls due on the calendar date of t.
func (e *Expense) OccursOn(t time.Time) bool {
	day, ok := e.Occurrence(MonthOf(t))
	return ok && day == t.Day()
}

// ActiveIn reports whether e counts towards month m. One-time expenses are
// always active; recurring ones stop after their end month.
func (e *Expense) ActiveIn(m Month) bool {
	if r, ok := e.Schedule.(Recurring); ok {
		return r.ActiveIn(m)
	}

	return true
}

func (r Recurring) ActiveIn(m Month) bool {
	return r.EndMonth == nil || !m.After(*r.EndMonth)
}
