package funds

import "github.com/shopspring/decimal"

// Allocation is the result of a distribution, mirroring the shape of the
// fund subtree it was computed over: one Share per direct child key.
type Allocation map[string]*Share

// Share is the amount distributed into one node. For a group the amount
// covers the whole subtree and Sub holds the nested allocation; for a leaf
// Sub is nil.
type Share struct {
	Amount decimal.Decimal
	Sub    Allocation
}

// Total sums the amounts at this level. Group shares already include their
// subtrees, so this is the total distributed into the allocation.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, s := range a {
		total = total.Add(s.Amount)
	}
	return total
}

// Merge combines two allocations of identical shape by summing the amounts
// at every key and recursively merging the nested parts. A side without a
// nested part adopts the other side's.
func (a Allocation) Merge(b Allocation) Allocation {
	if a == nil {
		return b
	}
	merged := make(Allocation, len(a))
	for key, sa := range a {
		sb, ok := b[key]
		if !ok {
			merged[key] = &Share{Amount: sa.Amount, Sub: sa.Sub}
			continue
		}
		sub := sa.Sub
		if sub == nil {
			sub = sb.Sub
		} else if sb.Sub != nil {
			sub = sub.Merge(sb.Sub)
		}
		merged[key] = &Share{Amount: sa.Amount.Add(sb.Amount), Sub: sub}
	}
	for key, sb := range b {
		if _, ok := a[key]; !ok {
			merged[key] = &Share{Amount: sb.Amount, Sub: sb.Sub}
		}
	}
	return merged
}

// zeroAllocation is the all-zero allocation over the group's direct
// children, the shape returned when nothing can be distributed.
func (g *FundGroup) zeroAllocation() Allocation {
	alloc := make(Allocation, len(g.funds))
	for _, f := range g.funds {
		alloc[f.Key()] = &Share{Amount: decimal.Zero}
	}
	return alloc
}
