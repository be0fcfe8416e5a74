package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/dhoekstra2000/savingfunds/funds"
	"github.com/dhoekstra2000/savingfunds/report"
)

type ListAccountsCmd struct{}

func (cmd *ListAccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	r := report.NewRenderer(ctx.Stdout)
	_, _ = fmt.Fprintln(ctx.Stdout, r.AccountTree(s.model.Accounts))
	return nil
}

type ListFundsCmd struct{}

func (cmd *ListFundsCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	r := report.NewRenderer(ctx.Stdout)
	_, _ = fmt.Fprintln(ctx.Stdout, r.FundTree(s.model.Funds))
	return nil
}

type FundsTableCmd struct {
	Watch bool `help:"Keep running and re-render whenever the funds file changes."`
}

func (cmd *FundsTableCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}
	defer s.finish(ctx)

	r := report.NewRenderer(ctx.Stdout)

	stop := s.collector.Start("render table")
	_, _ = fmt.Fprintln(ctx.Stdout, r.FundsTable(s.model.Funds))
	stop()

	if !cmd.Watch {
		return nil
	}
	return cmd.watch(ctx, globals, r)
}

// watch re-renders the table whenever the funds file is rewritten. Saves
// replace the file via rename, so the watch is on the directory rather
// than the file itself.
func (cmd *FundsTableCmd) watch(ctx *kong.Context, globals *Globals, r *report.Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	path, err := filepath.Abs(globals.File)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	printInfof(ctx.Stdout, "Watching '%s' for changes...", globals.File)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s, err := newSession(globals)
			if err != nil {
				printError(ctx.Stderr, err.Error())
				continue
			}
			_, _ = fmt.Fprintln(ctx.Stdout)
			_, _ = fmt.Fprintln(ctx.Stdout, r.FundsTable(s.model.Funds))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

type FundDetailsCmd struct {
	Key string `arg:"" help:"Key of the fund."`
}

func (cmd *FundDetailsCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}

	r := report.NewRenderer(ctx.Stdout)
	_, _ = fmt.Fprintln(ctx.Stdout, r.FundDetails(fund))
	return nil
}

type AccountDetailsCmd struct {
	Key string `arg:"" help:"Key of the account."`
}

func (cmd *AccountDetailsCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	account, err := s.accountByKey(cmd.Key)
	if err != nil {
		return err
	}

	r := report.NewRenderer(ctx.Stdout)
	_, _ = fmt.Fprintln(ctx.Stdout, r.AccountDetails(account))
	return nil
}

type TotalDailySavingRateCmd struct {
	When string `help:"Date to compute the rate on (YYYY-MM-DD), defaults to today." placeholder:"DATE"`
}

func (cmd *TotalDailySavingRateCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	when, err := parseWhen(cmd.When)
	if err != nil {
		return err
	}

	rate := s.model.Funds.DailySavingRate(when)
	_, _ = fmt.Fprintf(ctx.Stdout, "Total daily saving rate: € %s\n", funds.FormatRate(rate))
	return nil
}

type MonthlyAmountCmd struct {
	Year  int `arg:"" help:"Year of the month."`
	Month int `arg:"" help:"Month (1-12)."`
}

func (cmd *MonthlyAmountCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	month, err := parseMonth(cmd.Month)
	if err != nil {
		return err
	}

	printMonthlyBreakdown(ctx, s.model.Funds, cmd.Year, month)
	return nil
}

// printMonthlyBreakdown prints the total minimal monthly amount plus the
// per-group tranches that actually ask for money.
func printMonthlyBreakdown(ctx *kong.Context, tree *funds.Tree, year int, month time.Month) {
	total := tree.MinimalMonthlyAmount(year, month)
	_, _ = fmt.Fprintf(ctx.Stdout, "Minimal monthly amount for %02d-%d: € %s\n", month, year, funds.FormatAmount(total))
	for _, g := range tree.Groups() {
		mma := g.MinimalMonthlyAmount(year, month)
		if mma.IsPositive() {
			_, _ = fmt.Fprintf(ctx.Stdout, "  + %s: € %s\n", g.Name(), funds.FormatAmount(mma))
		}
	}
}
