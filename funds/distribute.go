package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistributeExtra splits an extra amount across the group's children
// proportionally to their daily saving rates on the given date, clamped by
// each child's remainder to save. Child groups recurse with their share; a
// subtree that cannot absorb its whole share keeps the slack accounted in
// the parent's entry, not in the returned remainder.
//
// Returns the nested allocation and the unused remainder; leaf balances are
// updated in place.
func (g *FundGroup) DistributeExtra(on time.Time, amount decimal.Decimal) (Allocation, decimal.Decimal) {
	rates := make(map[string]decimal.Decimal, len(g.funds))
	totalRate := decimal.Zero
	for _, f := range g.funds {
		r := f.DailySavingRate(on)
		rates[f.Key()] = r
		totalRate = totalRate.Add(r)
	}
	if !totalRate.IsPositive() {
		return g.zeroAllocation(), amount
	}

	alloc := make(Allocation, len(g.funds))
	for _, f := range g.funds {
		share := decimal.Min(amount.Mul(rates[f.Key()]).Div(totalRate), f.RemainderToSave())
		alloc[f.Key()] = &Share{Amount: share}
	}
	remainder := amount.Sub(alloc.Total())

	for _, f := range g.funds {
		switch child := f.(type) {
		case *FundGroup:
			// The sub-remainder stays accounted within this child's share.
			sub, _ := child.DistributeExtra(on, alloc[child.Key()].Amount)
			alloc[child.Key()].Sub = sub
		case Leaf:
			child.SetBalance(child.Balance().Add(alloc[child.Key()].Amount))
		}
	}

	return alloc, remainder
}

// DistributeExtra splits an extra amount across the whole tree, treating
// the top-level groups as siblings under a virtual root.
func (t *Tree) DistributeExtra(on time.Time, amount decimal.Decimal) (Allocation, decimal.Decimal) {
	rates := make(map[string]decimal.Decimal, len(t.groups))
	totalRate := decimal.Zero
	for _, g := range t.groups {
		r := g.DailySavingRate(on)
		rates[g.key] = r
		totalRate = totalRate.Add(r)
	}
	if !totalRate.IsPositive() {
		alloc := make(Allocation, len(t.groups))
		for _, g := range t.groups {
			alloc[g.key] = &Share{Amount: decimal.Zero}
		}
		return alloc, amount
	}

	alloc := make(Allocation, len(t.groups))
	for _, g := range t.groups {
		share := decimal.Min(amount.Mul(rates[g.key]).Div(totalRate), g.RemainderToSave())
		alloc[g.key] = &Share{Amount: share}
	}
	remainder := amount.Sub(alloc.Total())

	for _, g := range t.groups {
		sub, _ := g.DistributeExtra(on, alloc[g.key].Amount)
		alloc[g.key].Sub = sub
	}

	return alloc, remainder
}

// distributeMonthly fills the group towards its minimal monthly amount.
// When the incoming amount falls short, every child is scaled by the same
// ratio and the shortfall is reported as a deficit.
func (g *FundGroup) distributeMonthly(year int, month time.Month, amount decimal.Decimal) (Allocation, decimal.Decimal, decimal.Decimal) {
	first := MonthStart(year, month)
	days := DaysInMonth(year, month)

	minimal := g.MinimalMonthlyAmount(year, month)
	if minimal.IsZero() {
		return g.zeroAllocation(), amount, decimal.Zero
	}
	deficit := decimal.Max(decimal.Zero, minimal.Sub(amount))
	ratio := decimal.Min(decimal.NewFromInt(1), amount.Div(minimal))

	alloc := make(Allocation, len(g.funds))
	for _, f := range g.funds {
		share := decimal.Min(f.NDaysSaving(first, days).Mul(ratio), f.RemainderToSave())
		alloc[f.Key()] = &Share{Amount: share}
	}
	remainder := amount.Sub(alloc.Total())

	for _, f := range g.funds {
		switch child := f.(type) {
		case *FundGroup:
			sub, _, _ := child.distributeMonthly(year, month, alloc[child.Key()].Amount)
			alloc[child.Key()].Sub = sub
		case Leaf:
			child.SetBalance(child.Balance().Add(alloc[child.Key()].Amount))
		}
	}

	return alloc, remainder, deficit
}

// DistributeMonthly distributes a monthly budget over the tree in two
// passes. Pass one walks the top-level groups in file order, filling each
// towards its minimal monthly amount with whatever remains. If money is
// left over, pass two re-splits it across groups that declare a monthly
// factor above 1, each absorbing at most its upfactor room via the extra
// distribution.
//
// Returns the allocation, the final remainder and the summed deficit.
// Deficit and remainder are independent: a shortfall in one subtree does
// not preclude leftovers another subtree could not absorb.
func (t *Tree) DistributeMonthly(year int, month time.Month, amount decimal.Decimal) (Allocation, decimal.Decimal, decimal.Decimal) {
	first := MonthStart(year, month)
	days := DaysInMonth(year, month)

	alloc := make(Allocation, len(t.groups))
	deficit := decimal.Zero
	remainder := amount
	for _, g := range t.groups {
		sub, newRemainder, d := g.distributeMonthly(year, month, remainder)
		deficit = deficit.Add(d)
		alloc[g.key] = &Share{Amount: remainder.Sub(newRemainder), Sub: sub}
		remainder = newRemainder
	}

	if remainder.IsPositive() {
		rooms := make(map[string]decimal.Decimal, len(t.groups))
		for _, g := range t.groups {
			rooms[g.key] = g.upfactorRoom(first, days, year, month)
		}
		for _, g := range t.groups {
			if !rooms[g.key].IsPositive() {
				continue
			}
			dist := decimal.Min(rooms[g.key], remainder)
			extra, extraRemainder := g.DistributeExtra(first, dist)

			share := alloc[g.key]
			share.Amount = share.Amount.Add(dist.Sub(extraRemainder))
			share.Sub = share.Sub.Merge(extra)

			remainder = remainder.Sub(dist).Add(extraRemainder)
		}
	}

	return alloc, remainder, deficit
}

// upfactorRoom is the absorption capacity of the group beyond its minimal
// monthly amount, as permitted by its monthly factor.
func (g *FundGroup) upfactorRoom(first time.Time, days int, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, f := range g.funds {
		stretched := f.NDaysSaving(first, days).Mul(g.monthlyFactor)
		total = total.Add(decimal.Min(stretched, f.RemainderToSave()))
	}
	return total.Sub(g.MinimalMonthlyAmount(year, month))
}
