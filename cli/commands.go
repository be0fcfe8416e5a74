package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	File      string `help:"Path to the funds file." default:"./funds.yaml" type:"path"`
	DryRun    bool   `help:"Compute and report, but do not write the funds file back."`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Init            InitCmd            `cmd:"" help:"Initialize a new fund collection with one account and one fund group."`
	NewAccount      NewAccountCmd      `cmd:"" help:"Add a new account."`
	NewFundGroup    NewFundGroupCmd    `cmd:"" help:"Add a new fund group under an existing group."`
	NewFixedEndFund NewFixedEndFundCmd `cmd:"" help:"Add a fund that must reach its target by a fixed date."`
	NewOpenEndFund  NewOpenEndFundCmd  `cmd:"" help:"Add a fund that refills its target at a steady rate."`
	NewManualFund   NewManualFundCmd   `cmd:"" help:"Add a yield-bearing fund without target or deadline."`

	SetBalance          SetBalanceCmd          `cmd:"" help:"Set the balance of a fund."`
	ChangeTarget        ChangeTargetCmd        `cmd:"" help:"Change the target of a fund."`
	ChangeTargetDate    ChangeTargetDateCmd    `cmd:"" help:"Change the target date of a fixed-end fund."`
	ChangeSavingDays    ChangeSavingDaysCmd    `cmd:"" help:"Change the saving days of an open-end fund."`
	ChangeName          ChangeNameCmd          `cmd:"" help:"Change the display name of a fund."`
	ChangeMonthlyFactor ChangeMonthlyFactorCmd `cmd:"" help:"Change the monthly factor of a fund group."`

	Deposit  DepositCmd  `cmd:"" help:"Deposit an amount into a fund."`
	Withdraw WithdrawCmd `cmd:"" help:"Withdraw an amount from a fund."`

	RemoveFund    RemoveFundCmd    `cmd:"" help:"Remove a fund or an empty fund group."`
	RemoveAccount RemoveAccountCmd `cmd:"" help:"Remove an account that owns no funds."`

	ListAccounts         ListAccountsCmd         `cmd:"" help:"Print a tree of all accounts."`
	ListFunds            ListFundsCmd            `cmd:"" help:"Print a tree of all funds."`
	FundsTable           FundsTableCmd           `cmd:"" help:"Print a table with all funds."`
	FundDetails          FundDetailsCmd          `cmd:"" help:"Print the details of a fund."`
	AccountDetails       AccountDetailsCmd       `cmd:"" help:"Print the details of an account."`
	TotalDailySavingRate TotalDailySavingRateCmd `cmd:"" help:"Print the total daily saving rate."`
	MonthlyAmount        MonthlyAmountCmd        `cmd:"" help:"Print the minimal monthly amount for a month."`

	DistributeExtra    DistributeExtraCmd    `cmd:"" help:"Distribute an extra amount across all funds."`
	DistributeInterest DistributeInterestCmd `cmd:"" help:"Distribute interest credited to an account over its funds."`
	DistributeMonthly  DistributeMonthlyCmd  `cmd:"" help:"Distribute the monthly budget across all funds."`
}
