package cli

import (
	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/dhoekstra2000/savingfunds/funds"
)

type InitCmd struct {
	AccountKey  string `arg:"" help:"Key of the first account."`
	AccountName string `arg:"" help:"Name of the first account."`
	GroupKey    string `arg:"" help:"Key of the first fund group."`
	GroupName   string `arg:"" help:"Name of the first fund group."`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	s := &session{path: globals.File, model: funds.NewModel()}

	if err := s.model.Accounts.Add(funds.NewAccount(cmd.AccountKey, cmd.AccountName)); err != nil {
		return err
	}
	s.model.Funds.AddGroup(funds.NewFundGroup(cmd.GroupKey, cmd.GroupName))

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Initialized new fund collection in '"+s.path+"'.")
	return nil
}

type NewAccountCmd struct {
	Key  string `arg:"" help:"Key of the new account."`
	Name string `arg:"" help:"Name of the new account."`
}

func (cmd *NewAccountCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	if err := s.model.Accounts.Add(funds.NewAccount(cmd.Key, cmd.Name)); err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Added new account with key '"+cmd.Key+"' and name '"+cmd.Name+"'.")
	return nil
}

type NewFundGroupCmd struct {
	ParentKey string `arg:"" help:"Key of the parent fund group."`
	Key       string `arg:"" help:"Key of the new group."`
	Name      string `arg:"" help:"Name of the new group."`
}

func (cmd *NewFundGroupCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	if err := s.model.Funds.AddFundToGroup(funds.NewFundGroup(cmd.Key, cmd.Name), cmd.ParentKey); err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Added new fund group with key '"+cmd.Key+"' and name '"+cmd.Name+"'.")
	return nil
}

// newLeaf validates the shared preconditions of the new-*-fund commands and
// inserts the constructed leaf into the tree and its account.
func (s *session) newLeaf(parentKey, key, accountKey string, build func(*funds.Account) funds.Leaf) error {
	account, err := s.accountByKey(accountKey)
	if err != nil {
		return err
	}

	leaf := build(account)
	if err := s.model.Funds.AddFundToGroup(leaf, parentKey); err != nil {
		return err
	}
	account.AttachFund(leaf)
	return nil
}

type NewFixedEndFundCmd struct {
	ParentKey  string `arg:"" help:"Key of the parent fund group."`
	Key        string `arg:"" help:"Key of the new fund."`
	Name       string `arg:"" help:"Name of the new fund."`
	AccountKey string `arg:"" help:"Key of the account the fund lives on."`
	Target     string `arg:"" help:"Amount to save."`
	TargetDate string `arg:"" help:"Date the target must be reached (YYYY-MM-DD)."`
}

func (cmd *NewFixedEndFundCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	target, err := parsePositiveAmount(cmd.Target, "target")
	if err != nil {
		return err
	}
	targetDate, err := parseDate(cmd.TargetDate)
	if err != nil {
		return err
	}

	err = s.newLeaf(cmd.ParentKey, cmd.Key, cmd.AccountKey, func(account *funds.Account) funds.Leaf {
		return funds.NewFixedEndFund(cmd.Key, cmd.Name, account, decimal.Zero, target, targetDate)
	})
	if err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Added new fixed-end fund '"+cmd.Name+"'.")
	printInfof(ctx.Stdout, "Target: € %s by %s", funds.FormatAmount(target), cmd.TargetDate)
	return nil
}

type NewOpenEndFundCmd struct {
	ParentKey  string `arg:"" help:"Key of the parent fund group."`
	Key        string `arg:"" help:"Key of the new fund."`
	Name       string `arg:"" help:"Name of the new fund."`
	AccountKey string `arg:"" help:"Key of the account the fund lives on."`
	Target     string `arg:"" help:"Amount to save per period."`
	Days       int    `arg:"" help:"Length of the saving period in days."`
}

func (cmd *NewOpenEndFundCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	target, err := parsePositiveAmount(cmd.Target, "target")
	if err != nil {
		return err
	}
	if cmd.Days <= 0 {
		return &funds.NonPositiveError{What: "days"}
	}

	err = s.newLeaf(cmd.ParentKey, cmd.Key, cmd.AccountKey, func(account *funds.Account) funds.Leaf {
		return funds.NewOpenEndFund(cmd.Key, cmd.Name, account, decimal.Zero, target, cmd.Days)
	})
	if err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Added new open-end fund '"+cmd.Name+"'.")
	printInfof(ctx.Stdout, "Target: € %s per %d days", funds.FormatAmount(target), cmd.Days)
	return nil
}

type NewManualFundCmd struct {
	ParentKey  string `arg:"" help:"Key of the parent fund group."`
	Key        string `arg:"" help:"Key of the new fund."`
	Name       string `arg:"" help:"Name of the new fund."`
	AccountKey string `arg:"" help:"Key of the account the fund lives on."`
}

func (cmd *NewManualFundCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := newSession(globals)
	if err != nil {
		return err
	}

	err = s.newLeaf(cmd.ParentKey, cmd.Key, cmd.AccountKey, func(account *funds.Account) funds.Leaf {
		return funds.NewManualFund(cmd.Key, cmd.Name, account, decimal.Zero)
	})
	if err != nil {
		return err
	}

	if err := s.save(ctx, globals); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, "Added new manual fund with key '"+cmd.Key+"' and name '"+cmd.Name+"'.")
	return nil
}
