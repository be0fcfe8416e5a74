package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// FundDetails renders the full detail view of a single fund.
func (r *Renderer) FundDetails(f funds.Fund) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-16s%s\n", label+":", value)
	}

	row("Key", f.Key())
	row("Name", f.Name())
	row("Type", displayType(f))
	if leaf, ok := f.(funds.Leaf); ok {
		row("Account", leaf.Account().Name())
	}
	row("Balance", r.euro(f.Balance()))

	switch f := f.(type) {
	case *funds.FixedEndFund:
		row("Target", r.euro(f.Target()))
		row("Target date", f.TargetDate().Format("2006-01-02"))
		row("To save", r.euro(f.RemainderToSave()))
		row("Daily rate", r.styles.Amount("€ "+funds.FormatRate(f.DailySavingRate(today()))))
	case *funds.OpenEndFund:
		row("Target", r.euro(f.Target()))
		row("Days", fmt.Sprintf("%d", f.Days()))
		row("To save", r.euro(f.RemainderToSave()))
		row("Daily rate", r.styles.Amount("€ "+funds.FormatRate(f.DailySavingRate(today()))))
	case *funds.FundGroup:
		row("Target", r.euro(f.Target()))
		row("To save", r.euro(f.RemainderToSave()))
		row("Monthly factor", funds.FormatAmount(f.MonthlyFactor()))
		row("Funds", fmt.Sprintf("%d", len(f.Funds())))
	}

	return strings.TrimRight(b.String(), "\n")
}

// AccountDetails renders the full detail view of a single account.
func (r *Renderer) AccountDetails(a *funds.Account) string {
	var b strings.Builder
	row := func(label, value string) {
		fmt.Fprintf(&b, "%-16s%s\n", label+":", value)
	}

	row("Key", a.Key())
	row("Name", a.Name())
	row("Min. balance", r.euro(a.MinimalBalance()))
	row("Funds", fmt.Sprintf("%d", len(a.Funds())))
	for _, f := range a.Funds() {
		fmt.Fprintf(&b, "  %s\n", r.fundLabel(f))
	}

	return strings.TrimRight(b.String(), "\n")
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
