package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/dhoekstra2000/savingfunds/funds"
)

type DepositCmd struct {
	Key    string `arg:"" help:"Key of the fund."`
	Amount string `arg:"" help:"Amount to deposit."`
}

func (cmd *DepositCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	amount, err := parsePositiveAmount(cmd.Amount, "amount")
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
	leaf.SetBalance(leaf.Balance().Add(amount))

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deposited € %s to '%s'. New balance: € %s.",
		funds.FormatAmount(amount), fund.Name(), funds.FormatAmount(leaf.Balance())))
	return nil
}

type WithdrawCmd struct {
	Key    string `arg:"" help:"Key of the fund."`
	Amount string `arg:"" help:"Amount to withdraw."`
}

func (cmd *WithdrawCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	amount, err := parsePositiveAmount(cmd.Amount, "amount")
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
	if amount.GreaterThan(leaf.Balance()) {
		return &funds.OverdrawError{Balance: leaf.Balance()}
	}
	leaf.SetBalance(leaf.Balance().Sub(amount))

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Withdrawn € %s from '%s'. New balance: € %s.",
		funds.FormatAmount(amount), fund.Name(), funds.FormatAmount(leaf.Balance())))
	return nil
}
