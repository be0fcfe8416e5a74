package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/dhoekstra2000/savingfunds/funds"
)

type SetBalanceCmd struct {
	Key     string `arg:"" help:"Key of the fund."`
	Balance string `arg:"" help:"New balance."`
}

func (cmd *SetBalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	balance, err := parsePositiveAmount(cmd.Balance, "balance")
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	leaf, ok := fund.(funds.Leaf)
	if !ok {
		return &funds.WrongVariantError{Key: cmd.Key, Want: "a fund with its own balance"}
	}
	leaf.SetBalance(balance)

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Set balance of fund '%s' to € %s.", fund.Name(), funds.FormatAmount(balance)))
	return nil
}

type ChangeTargetCmd struct {
	Key    string `arg:"" help:"Key of the fund."`
	Target string `arg:"" help:"New target."`
}

func (cmd *ChangeTargetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	target, err := parsePositiveAmount(cmd.Target, "target")
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	switch f := fund.(type) {
	case *funds.FixedEndFund:
		f.SetTarget(target)
	case *funds.OpenEndFund:
		f.SetTarget(target)
	default:
		return &funds.WrongVariantError{Key: cmd.Key, Want: "a fund with its own target"}
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Changed target of fund '%s' to € %s.", fund.Name(), funds.FormatAmount(target)))
	return nil
}

type ChangeTargetDateCmd struct {
	Key        string `arg:"" help:"Key of the fund."`
	TargetDate string `arg:"" help:"New target date (YYYY-MM-DD)."`
}

func (cmd *ChangeTargetDateCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	targetDate, err := parseDate(cmd.TargetDate)
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	fixed, ok := fund.(*funds.FixedEndFund)
	if !ok {
		return &funds.WrongVariantError{Key: cmd.Key, Want: "a fixed-end fund"}
	}
	fixed.SetTargetDate(targetDate)

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Changed target date of fund '%s' to %s.", fund.Name(), cmd.TargetDate))
	return nil
}

type ChangeSavingDaysCmd struct {
	Key  string `arg:"" help:"Key of the fund."`
	Days int    `arg:"" help:"New saving period in days."`
}

func (cmd *ChangeSavingDaysCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	if cmd.Days <= 0 {
		return &funds.NonPositiveError{What: "days"}
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	open, ok := fund.(*funds.OpenEndFund)
	if !ok {
		return &funds.WrongVariantError{Key: cmd.Key, Want: "an open-end fund"}
	}
	open.SetDays(cmd.Days)

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Changed saving days of fund '%s' to %d.", fund.Name(), cmd.Days))
	return nil
}

type ChangeNameCmd struct {
	Key  string `arg:"" help:"Key of the fund."`
	Name string `arg:"" help:"New name."`
}

func (cmd *ChangeNameCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	fund.Rename(cmd.Name)

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Renamed fund with key '%s' to '%s'.", cmd.Key, cmd.Name))
	return nil
}

type ChangeMonthlyFactorCmd struct {
	Key    string `arg:"" help:"Key of the fund group."`
	Factor string `arg:"" help:"New monthly factor."`
}

func (cmd *ChangeMonthlyFactorCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	factor, err := parsePositiveAmount(cmd.Factor, "factor")
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}
	group, ok := fund.(*funds.FundGroup)
	if !ok {
		return &funds.WrongVariantError{Key: cmd.Key, Want: "a fund group"}
	}
	group.SetMonthlyFactor(factor)

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Changed monthly factor of group '%s' to %s.", fund.Name(), funds.FormatAmount(factor)))
	return nil
}
