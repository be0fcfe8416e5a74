package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tree is the root of the fund hierarchy, holding the top-level groups in
// file order. That order defines the first pass of the monthly
// distribution.
type Tree struct {
	groups []*FundGroup
}

// NewTree creates a tree over the given top-level groups.
func NewTree(groups ...*FundGroup) *Tree {
	return &Tree{groups: groups}
}

// Groups returns the top-level groups in insertion order.
func (t *Tree) Groups() []*FundGroup { return t.groups }

// AddGroup appends a new top-level group.
func (t *Tree) AddGroup(g *FundGroup) { t.groups = append(t.groups, g) }

// ContainsKey reports whether any node in the tree has the given key.
func (t *Tree) ContainsKey(key string) bool {
	for _, g := range t.groups {
		if g.ContainsKey(key) {
			return true
		}
	}
	return false
}

// FundByKey returns the node with the given key, or nil.
func (t *Tree) FundByKey(key string) Fund {
	for _, g := range t.groups {
		if found := g.FundByKey(key); found != nil {
			return found
		}
	}
	return nil
}

// AddFundToGroup inserts fund as a child of the group with the given key.
// The fund's key must be free everywhere in the tree and the group must
// exist.
func (t *Tree) AddFundToGroup(fund Fund, groupKey string) error {
	if t.ContainsKey(fund.Key()) {
		return &DuplicateKeyError{Kind: "fund", Key: fund.Key()}
	}
	for _, g := range t.groups {
		if g.AddFundToGroup(fund, groupKey) {
			return nil
		}
	}
	return &NotFoundError{Kind: "fund group", Key: groupKey}
}

// RemoveFundByKey removes the node with the given key, including top-level
// groups. Removing a non-empty group is an error.
func (t *Tree) RemoveFundByKey(key string) (bool, error) {
	for i, g := range t.groups {
		if g.key != key {
			continue
		}
		if !g.Empty() {
			return false, &NonEmptyRemovalError{Kind: "fund group", Key: key}
		}
		t.groups = append(t.groups[:i], t.groups[i+1:]...)
		return true, nil
	}
	for _, g := range t.groups {
		removed, err := g.RemoveFundByKey(key)
		if removed || err != nil {
			return removed, err
		}
	}
	return false, nil
}

func (t *Tree) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, g := range t.groups {
		total = total.Add(g.Balance())
	}
	return total
}

func (t *Tree) Target() decimal.Decimal {
	total := decimal.Zero
	for _, g := range t.groups {
		total = total.Add(g.Target())
	}
	return total
}

func (t *Tree) DailySavingRate(on time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, g := range t.groups {
		total = total.Add(g.DailySavingRate(on))
	}
	return total
}

func (t *Tree) NDaysSaving(on time.Time, days int) decimal.Decimal {
	total := decimal.Zero
	for _, g := range t.groups {
		total = total.Add(g.NDaysSaving(on, days))
	}
	return total
}

// MinimalMonthlyAmount sums the minimal monthly amounts of all top-level
// groups.
func (t *Tree) MinimalMonthlyAmount(year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, g := range t.groups {
		total = total.Add(g.MinimalMonthlyAmount(year, month))
	}
	return total
}

// Model couples the account collection with the fund tree. It is what the
// persistence layer loads and saves as a whole.
type Model struct {
	Accounts *Accounts
	Funds    *Tree
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Accounts: NewAccounts(), Funds: NewTree()}
}
