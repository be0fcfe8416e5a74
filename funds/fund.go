// Package funds models a personal savings plan as a hierarchy of earmarked
// money pots. Leaf funds live on real-world accounts and carry a balance;
// fund groups aggregate them into a tree. The package implements the rate
// queries (remainder to save, daily saving rate, n-day saving, minimal
// monthly amount) and the three distribution algorithms that split incoming
// money across the tree: extra amounts, monthly budgets and account
// interest.
//
// Every distribution is conservative (distributed amounts plus the returned
// remainder equal the input to the last digit), clamped (no leaf ever
// exceeds its target) and hierarchically coherent (a group's reported
// allocation is the amount passed into its subtree; any part the subtree
// cannot place stays in that entry, not in the returned remainder).
// Distributions mutate leaf
// balances as they compute; reload the model before running a second one
// against the same state.
package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund is a node in the fund tree: a FixedEndFund, OpenEndFund, ManualFund
// or FundGroup.
type Fund interface {
	Key() string
	Name() string
	Rename(name string)

	// Balance is the money currently set aside for this fund; for groups
	// the sum over all children.
	Balance() decimal.Decimal

	// Target is the amount this fund saves towards. A manual fund's target
	// is defined as its current balance; a group's is the sum over children.
	Target() decimal.Decimal

	// RemainderToSave is the money still needed to reach the target, never
	// negative. Always zero for manual funds.
	RemainderToSave() decimal.Decimal

	// DailySavingRate is the per-day flow required to reach the target.
	DailySavingRate(on time.Time) decimal.Decimal

	// NDaysSaving is the amount to save over the next days, clamped by the
	// remainder to save.
	NDaysSaving(on time.Time, days int) decimal.Decimal

	// Type is the variant name used in the persisted format.
	Type() string
}

// Leaf is a fund that owns its balance and is attached to an account.
type Leaf interface {
	Fund
	Account() *Account
	SetBalance(balance decimal.Decimal)
}

// FixedEndFund saves towards a target that must be reached by a fixed date.
type FixedEndFund struct {
	key, name  string
	account    *Account
	balance    decimal.Decimal
	target     decimal.Decimal
	targetDate time.Time
}

// NewFixedEndFund creates a fixed-end fund on the given account.
func NewFixedEndFund(key, name string, account *Account, balance, target decimal.Decimal, targetDate time.Time) *FixedEndFund {
	return &FixedEndFund{
		key:        key,
		name:       name,
		account:    account,
		balance:    balance,
		target:     target,
		targetDate: targetDate,
	}
}

func (f *FixedEndFund) Key() string { return f.key }
func (f *FixedEndFund) Name() string { return f.name }
func (f *FixedEndFund) Rename(name string) { f.name = name }
func (f *FixedEndFund) Account() *Account { return f.account }
func (f *FixedEndFund) Balance() decimal.Decimal { return f.balance }
func (f *FixedEndFund) Target() decimal.Decimal { return f.target }
func (f *FixedEndFund) TargetDate() time.Time { return f.targetDate }
func (f *FixedEndFund) Type() string { return "fixed" }

func (f *FixedEndFund) SetBalance(balance decimal.Decimal) { f.balance = balance }
func (f *FixedEndFund) SetTarget(target decimal.Decimal) { f.target = target }
func (f *FixedEndFund) SetTargetDate(targetDate time.Time) { f.targetDate = targetDate }

func (f *FixedEndFund) RemainderToSave() decimal.Decimal {
	return decimal.Max(decimal.Zero, f.target.Sub(f.balance))
}

// DailySavingRate spreads the remainder over the days left until the target
// date. Once the date has passed, the whole remainder is due at once.
func (f *FixedEndFund) DailySavingRate(on time.Time) decimal.Decimal {
	days := daysBetween(on, f.targetDate)
	if days <= 0 {
		return f.RemainderToSave()
	}
	return f.RemainderToSave().Div(decimal.NewFromInt(int64(days)))
}

func (f *FixedEndFund) NDaysSaving(on time.Time, days int) decimal.Decimal {
	saved := f.DailySavingRate(on).Mul(decimal.NewFromInt(int64(days)))
	return decimal.Min(saved, f.RemainderToSave())
}

// OpenEndFund refills its target at a steady rate of target/days per day,
// restarting indefinitely.
type OpenEndFund struct {
	key, name string
	account   *Account
	balance   decimal.Decimal
	target    decimal.Decimal
	days      int
}

// NewOpenEndFund creates an open-end fund on the given account.
func NewOpenEndFund(key, name string, account *Account, balance, target decimal.Decimal, days int) *OpenEndFund {
	return &OpenEndFund{
		key:     key,
		name:    name,
		account: account,
		balance: balance,
		target:  target,
		days:    days,
	}
}

func (f *OpenEndFund) Key() string { return f.key }
func (f *OpenEndFund) Name() string { return f.name }
func (f *OpenEndFund) Rename(name string) { f.name = name }
func (f *OpenEndFund) Account() *Account { return f.account }
func (f *OpenEndFund) Balance() decimal.Decimal { return f.balance }
func (f *OpenEndFund) Target() decimal.Decimal { return f.target }
func (f *OpenEndFund) Days() int { return f.days }
func (f *OpenEndFund) Type() string { return "open" }

func (f *OpenEndFund) SetBalance(balance decimal.Decimal) { f.balance = balance }
func (f *OpenEndFund) SetTarget(target decimal.Decimal) { f.target = target }
func (f *OpenEndFund) SetDays(days int) { f.days = days }

func (f *OpenEndFund) RemainderToSave() decimal.Decimal {
	return decimal.Max(decimal.Zero, f.target.Sub(f.balance))
}

// DailySavingRate uses the full target rather than the remainder, so the
// rate stays constant as the fund refills.
func (f *OpenEndFund) DailySavingRate(on time.Time) decimal.Decimal {
	return f.target.Div(decimal.NewFromInt(int64(f.days)))
}

func (f *OpenEndFund) NDaysSaving(on time.Time, days int) decimal.Decimal {
	saved := f.DailySavingRate(on).Mul(decimal.NewFromInt(int64(days)))
	return decimal.Min(saved, f.RemainderToSave())
}

// ManualFund holds yield-bearing money with no target or deadline. It never
// asks for savings but absorbs interest without an upper bound.
type ManualFund struct {
	key, name string
	account   *Account
	balance   decimal.Decimal
}

// NewManualFund creates a manual fund on the given account.
func NewManualFund(key, name string, account *Account, balance decimal.Decimal) *ManualFund {
	return &ManualFund{key: key, name: name, account: account, balance: balance}
}

func (f *ManualFund) Key() string { return f.key }
func (f *ManualFund) Name() string { return f.name }
func (f *ManualFund) Rename(name string) { f.name = name }
func (f *ManualFund) Account() *Account { return f.account }
func (f *ManualFund) Balance() decimal.Decimal { return f.balance }
func (f *ManualFund) Type() string { return "manual" }

func (f *ManualFund) SetBalance(balance decimal.Decimal) { f.balance = balance }

// Target of a manual fund is defined as its current balance.
func (f *ManualFund) Target() decimal.Decimal { return f.balance }

func (f *ManualFund) RemainderToSave() decimal.Decimal { return decimal.Zero }

func (f *ManualFund) DailySavingRate(on time.Time) decimal.Decimal { return decimal.Zero }

func (f *ManualFund) NDaysSaving(on time.Time, days int) decimal.Decimal { return decimal.Zero }
