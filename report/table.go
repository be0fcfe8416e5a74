package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// FundsTable renders every fund in the tree as a flat table, groups
// included, in depth-first order.
func (r *Renderer) FundsTable(t *funds.Tree) string {
	// Leave room for the fixed-width money columns.
	nameWidth := r.width/3 - 2
	if nameWidth < 12 {
		nameWidth = 12
	}

	var rows [][]string
	var walk func(f funds.Fund)
	walk = func(f funds.Fund) {
		rows = append(rows, []string{
			f.Key(),
			runewidth.Truncate(f.Name(), nameWidth, "…"),
			displayType(f),
			funds.FormatAmount(f.Balance()),
			funds.FormatAmount(f.Target()),
			funds.FormatAmount(f.RemainderToSave()),
		})
		if g, ok := f.(*funds.FundGroup); ok {
			for _, child := range g.Funds() {
				walk(child)
			}
		}
	}
	for _, g := range t.Groups() {
		walk(g)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	amountStyle := cellStyle.Align(lipgloss.Right)

	tbl := table.New().
		Headers("KEY", "NAME", "TYPE", "BALANCE", "TARGET", "TO SAVE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 3 {
				return amountStyle
			}
			return cellStyle
		})

	return tbl.String()
}
