package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/dhoekstra2000/savingfunds/funds"
)

type RemoveFundCmd struct {
	Key string `arg:"" help:"Key of the fund to remove."`
}

func (cmd *RemoveFundCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	fund, err := s.fundByKey(cmd.Key)
	if err != nil {
		return err
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Remove fund '%s'?", fund.Name()))
	if err != nil {
		return err
	}
	if !confirmed {
		printInfof(ctx.Stdout, "Aborted.")
		return nil
	}

	if _, err := s.model.Funds.RemoveFundByKey(cmd.Key); err != nil {
		return err
	}
	if leaf, ok := fund.(funds.Leaf); ok {
		leaf.Account().DetachFund(cmd.Key)
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Removed fund with key '"+cmd.Key+"'.")
	return nil
}

type RemoveAccountCmd struct {
	Key string `arg:"" help:"Key of the account to remove."`
}

func (cmd *RemoveAccountCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	account, err := s.accountByKey(cmd.Key)
	if err != nil {
		return err
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Remove account '%s'?", account.Name()))
	if err != nil {
		return err
	}
	if !confirmed {
		printInfof(ctx.Stdout, "Aborted.")
		return nil
	}

	if err := s.model.Accounts.Remove(cmd.Key); err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Removed account with key '"+cmd.Key+"'.")
	return nil
}
