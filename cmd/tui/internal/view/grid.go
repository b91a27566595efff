package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/MrJamesThe3rd/paycal/internal/calendar"
	"github.com/MrJamesThe3rd/paycal/internal/expense"
)

const (
	cellWidth   = 14
	cellEntries = 3
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellEntries+1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238"))
	selectedCellStyle = cellStyle.BorderForeground(lipgloss.Color("205"))
	todayStyle        = lipgloss.NewStyle().Bold(true).Underline(true)
	weekdays          = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

func renderGrid(g calendar.Grid, selected int) string {
	head := make([]string, len(weekdays))
	for i, w := range weekdays {
		head[i] = lipgloss.NewStyle().Width(cellWidth + 2).Align(lipgloss.Center).Render(w)
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, head...)}

	for _, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = renderCell(d, selected)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(d *calendar.Day, selected int) string {
	if d == nil {
		return cellStyle.BorderForeground(lipgloss.Color("235")).Render("")
	}

	label := fmt.Sprintf("%2d", d.Date.Day())
	if d.Today {
		label = todayStyle.Render(label)
	}

	if d.Payday {
		label += " " + paydayStyle.Render("$ pay")
	}

	lines := []string{label}

	for i, e := range d.Entries {
		if i == cellEntries-1 && len(d.Entries) > cellEntries {
			lines = append(lines, faintStyle.Render(fmt.Sprintf("+%d more", len(d.Entries)-i)))
			break
		}

		lines = append(lines, statusStyles[e.Status].Render(truncate("• "+e.Expense.Name, cellWidth)))
	}

	style := cellStyle
	if d.Date.Day() == selected {
		style = selectedCellStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most width terminal columns.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func renderSummaries(summaries []calendar.Summary) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("This month"))

	if len(summaries) == 0 {
		sb.WriteString("\n" + faintStyle.Render("No expenses"))
	}

	for _, s := range summaries {
		fmt.Fprintf(&sb, "\n%s  total %s\n     paid %s  unpaid %s",
			s.Currency,
			FormatMoney(s.Currency, s.Total),
			statusStyles[expense.StatusPaid].Render(FormatMoney(s.Currency, s.Paid)),
			statusStyles[expense.StatusUnpaid].Render(FormatMoney(s.Currency, s.Unpaid)),
		)

		if s.PartialCount > 0 {
			fmt.Fprintf(&sb, "\n     %s", statusStyles[expense.StatusPartial].Render(fmt.Sprintf("%d partially paid", s.PartialCount)))
		}
	}

	return panelStyle.Width(40).Render(sb.String())
}

// renderPaydays lists the paydays falling in month m.
func renderPaydays(paydays []time.Time, m expense.Month) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Paydays"))

	n := 0

	for _, p := range paydays {
		if expense.MonthOf(p) != m {
			continue
		}

		sb.WriteString("\n" + paydayStyle.Render(p.Format("Mon 2 Jan")))
		n++
	}

	if n == 0 {
		sb.WriteString("\n" + faintStyle.Render("None this month"))
	}

	return panelStyle.Width(40).Render(sb.String())
}
