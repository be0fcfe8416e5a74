package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundGroup is an inner node of the fund tree. Its balance, target and
// rates are the sums over its children. Children keep insertion order;
// that order drives both serialization and the monthly distribution.
type FundGroup struct {
	key, name     string
	funds         []Fund
	monthlyFactor decimal.Decimal
}

// NewFundGroup creates an empty group with a monthly factor of 1.
func NewFundGroup(key, name string) *FundGroup {
	return &FundGroup{key: key, name: name, monthlyFactor: decimal.NewFromInt(1)}
}

func (g *FundGroup) Key() string { return g.key }
func (g *FundGroup) Name() string { return g.name }
func (g *FundGroup) Rename(name string) { g.name = name }
func (g *FundGroup) Type() string { return "group" }

// Funds returns the children in insertion order.
func (g *FundGroup) Funds() []Fund { return g.funds }

// Empty reports whether the group has no children.
func (g *FundGroup) Empty() bool { return len(g.funds) == 0 }

// MonthlyFactor is the permitted multiple of the group's minimal monthly
// amount used by the second pass of the monthly distribution.
func (g *FundGroup) MonthlyFactor() decimal.Decimal { return g.monthlyFactor }

func (g *FundGroup) SetMonthlyFactor(factor decimal.Decimal) { g.monthlyFactor = factor }

func (g *FundGroup) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		total = total.Add(f.Balance())
	}
	return total
}

func (g *FundGroup) Target() decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		total = total.Add(f.Target())
	}
	return total
}

func (g *FundGroup) RemainderToSave() decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		total = total.Add(f.RemainderToSave())
	}
	return total
}

func (g *FundGroup) DailySavingRate(on time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		total = total.Add(f.DailySavingRate(on))
	}
	return total
}

func (g *FundGroup) NDaysSaving(on time.Time, days int) decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		total = total.Add(f.NDaysSaving(on, days))
	}
	return total
}

// MinimalMonthlyAmount is the smallest deposit for the given month that
// keeps every deadline in the subtree.
func (g *FundGroup) MinimalMonthlyAmount(year int, month time.Month) decimal.Decimal {
	return g.NDaysSaving(MonthStart(year, month), DaysInMonth(year, month))
}

// ContainsKey reports whether any node in the subtree, the group itself
// included, has the given key.
func (g *FundGroup) ContainsKey(key string) bool {
	if g.key == key {
		return true
	}
	for _, f := range g.funds {
		if f.Key() == key {
			return true
		}
	}
	for _, f := range g.funds {
		if sub, ok := f.(*FundGroup); ok && sub.ContainsKey(key) {
			return true
		}
	}
	return false
}

// FundByKey returns the subtree node with the given key, or nil. Keys are
// globally unique, so the depth-first first match is the only match.
func (g *FundGroup) FundByKey(key string) Fund {
	if g.key == key {
		return g
	}
	for _, f := range g.funds {
		if f.Key() == key {
			return f
		}
	}
	for _, f := range g.funds {
		if sub, ok := f.(*FundGroup); ok {
			if found := sub.FundByKey(key); found != nil {
				return found
			}
		}
	}
	return nil
}

// AddFundToGroup inserts fund as a child of the subtree node whose key is
// groupKey. Returns false when no such group exists.
func (g *FundGroup) AddFundToGroup(fund Fund, groupKey string) bool {
	if g.key == groupKey {
		g.funds = append(g.funds, fund)
		return true
	}
	for _, f := range g.funds {
		if sub, ok := f.(*FundGroup); ok && sub.AddFundToGroup(fund, groupKey) {
			return true
		}
	}
	return false
}

// RemoveFundByKey removes the child node with the given key anywhere in the
// subtree. Removing a non-empty group is an error. Account back-references
// to a removed leaf are the caller's responsibility.
func (g *FundGroup) RemoveFundByKey(key string) (bool, error) {
	for i, f := range g.funds {
		if f.Key() != key {
			continue
		}
		if sub, ok := f.(*FundGroup); ok && !sub.Empty() {
			return false, &NonEmptyRemovalError{Kind: "fund group", Key: key}
		}
		g.funds = append(g.funds[:i], g.funds[i+1:]...)
		return true, nil
	}
	for _, f := range g.funds {
		if sub, ok := f.(*FundGroup); ok {
			removed, err := sub.RemoveFundByKey(key)
			if removed || err != nil {
				return removed, err
			}
		}
	}
	return false, nil
}
