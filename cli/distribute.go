package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/dhoekstra2000/savingfunds/funds"
	"github.com/dhoekstra2000/savingfunds/report"
)

type DistributeExtraCmd struct {
	When   string `help:"Date to compute rates on (YYYY-MM-DD), defaults to today." placeholder:"DATE"`
	Amount string `arg:"" help:"Amount to distribute."`
}

func (cmd *DistributeExtraCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}
	defer s.finish(ctx)

	amount, err := parsePositiveAmount(cmd.Amount, "amount")
	if err != nil {
		return err
	}
	when, err := parseWhen(cmd.When)
	if err != nil {
		return err
	}

	stop := s.collector.Start("distribute extra")
	alloc, remainder := s.model.Funds.DistributeExtra(when, amount)
	stop()

	r := report.NewRenderer(ctx.Stdout)
	if remainder.Equal(amount) {
		printInfof(ctx.Stdout, "No funds to fill!")
	} else {
		printInfof(ctx.Stdout, "Distributing extra amount: € %s", funds.FormatAmount(amount))
		_, _ = fmt.Fprintln(ctx.Stdout, r.AllocationTree(s.model.Funds, alloc))
	}
	printInfof(ctx.Stdout, "Remaining amount: € %s", funds.FormatAmount(remainder))

	return s.save(ctx, globals)
}

type DistributeInterestCmd struct {
	When       string `help:"Date to compute rates on (YYYY-MM-DD), defaults to today." placeholder:"DATE"`
	AccountKey string `arg:"" help:"Key of the account the interest was credited to."`
	Amount     string `arg:"" help:"Interest amount."`
}

func (cmd *DistributeInterestCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}
	defer s.finish(ctx)

	account, err := s.accountByKey(cmd.AccountKey)
	if err != nil {
		return err
	}
	amount, err := parsePositiveAmount(cmd.Amount, "amount")
	if err != nil {
		return err
	}
	when, err := parseWhen(cmd.When)
	if err != nil {
		return err
	}

	stop := s.collector.Start("distribute interest")
	alloc, remainder := account.DistributeInterest(when, amount)
	stop()

	r := report.NewRenderer(ctx.Stdout)
	if remainder.Equal(amount) {
		printInfof(ctx.Stdout, "No funds to distribute to.")
	} else {
		printInfof(ctx.Stdout, "Distributing interest of account '%s' as follows:", account.Name())
		_, _ = fmt.Fprintln(ctx.Stdout, r.InterestAllocation(account, alloc))
	}
	printInfof(ctx.Stdout, "Remaining interest: € %s", funds.FormatAmount(remainder))

	return s.save(ctx, globals)
}

type DistributeMonthlyCmd struct {
	Year   int    `arg:"" help:"Year of the month."`
	Month  int    `arg:"" help:"Month (1-12)."`
	Amount string `arg:"" help:"Monthly budget to distribute."`
}

func (cmd *DistributeMonthlyCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}
	defer s.finish(ctx)

	month, err := parseMonth(cmd.Month)
	if err != nil {
		return err
	}
	amount, err := parsePositiveAmount(cmd.Amount, "amount")
	if err != nil {
		return err
	}

	printInfof(ctx.Stdout, "Distributing monthly amount: € %s", funds.FormatAmount(amount))
	printMonthlyBreakdown(ctx, s.model.Funds, cmd.Year, month)

	stop := s.collector.Start("distribute monthly")
	alloc, remainder, deficit := s.model.Funds.DistributeMonthly(cmd.Year, month, amount)
	stop()

	r := report.NewRenderer(ctx.Stdout)
	_, _ = fmt.Fprintln(ctx.Stdout, r.AllocationTree(s.model.Funds, alloc))

	if remainder.IsPositive() {
		printInfof(ctx.Stdout, "Remainder: € %s", funds.FormatAmount(remainder))
	}
	if deficit.IsPositive() {
		_, _ = fmt.Fprintln(ctx.Stdout, r.Styles().Warning(fmt.Sprintf("Deficit: € %s", funds.FormatAmount(deficit))))
	}

	return s.save(ctx, globals)
}
