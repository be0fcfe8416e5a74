package funds

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestDistributeExtraProportional(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	a := NewOpenEndFund("a", "A", account, decimal.Zero, MustParseAmount("300"), 30)
	b := NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("600"), 30)
	group.AddFundToGroup(a, "goals")
	group.AddFundToGroup(b, "goals")

	alloc, remainder := group.DistributeExtra(date("2025-06-15"), MustParseAmount("30"))

	// Rates are 10 and 20 per day, so the split is 1:2.
	assertAmount(t, "10", alloc["a"].Amount)
	assertAmount(t, "20", alloc["b"].Amount)
	assertAmount(t, "0", remainder)
	assertAmount(t, "10", a.Balance())
	assertAmount(t, "20", b.Balance())
}

func TestDistributeExtraClamped(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	a := NewOpenEndFund("a", "A", account, MustParseAmount("295"), MustParseAmount("300"), 30)
	b := NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("600"), 30)
	group.AddFundToGroup(a, "goals")
	group.AddFundToGroup(b, "goals")

	alloc, remainder := group.DistributeExtra(date("2025-06-15"), MustParseAmount("30"))

	// A's share of 10 is clamped at its remaining 5; the slack surfaces as
	// the remainder.
	assertAmount(t, "5", alloc["a"].Amount)
	assertAmount(t, "20", alloc["b"].Amount)
	assertAmount(t, "5", remainder)
	assertAmount(t, "300", a.Balance())
}

func TestDistributeExtraZeroRate(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	group.AddFundToGroup(NewManualFund("m", "M", account, MustParseAmount("100")), "goals")

	alloc, remainder := group.DistributeExtra(date("2025-06-15"), MustParseAmount("30"))

	assertAmount(t, "0", alloc["m"].Amount)
	assertAmount(t, "30", remainder)
}

func TestDistributeExtraNestedSlack(t *testing.T) {
	// A child group whose own subtree cannot absorb its whole share keeps
	// the slack accounted in the parent's entry for it, not in the outer
	// remainder.
	account := NewAccount("main", "Main")
	inner := NewFundGroup("inner", "Inner")
	a1 := NewOpenEndFund("a1", "A1", account, MustParseAmount("295"), MustParseAmount("300"), 30)
	a2 := NewOpenEndFund("a2", "A2", account, decimal.Zero, MustParseAmount("300"), 30)
	inner.AddFundToGroup(a1, "inner")
	inner.AddFundToGroup(a2, "inner")

	outer := NewFundGroup("outer", "Outer")
	outer.AddFundToGroup(inner, "outer")
	b := NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("600"), 30)
	outer.AddFundToGroup(b, "outer")

	alloc, remainder := outer.DistributeExtra(date("2025-06-15"), MustParseAmount("60"))

	// Rates: inner 20/day (10+10), b 20/day. Inner's share of 30 clears
	// its group clamp (remainder 305), but inside it a1 can only take 5 of
	// its proportional 15. The unplaced 10 stays inside inner's entry.
	assertAmount(t, "30", alloc["inner"].Amount)
	assertAmount(t, "5", alloc["inner"].Sub["a1"].Amount)
	assertAmount(t, "15", alloc["inner"].Sub["a2"].Amount)
	assertAmount(t, "30", alloc["b"].Amount)
	assertAmount(t, "0", remainder)

	assertAmount(t, "300", a1.Balance())
	assertAmount(t, "15", a2.Balance())
	assertAmount(t, "30", b.Balance())
}

func TestDistributeExtraConservation(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	group.AddFundToGroup(NewFixedEndFund("f1", "F1", account, MustParseAmount("12.34"), MustParseAmount("700"), date("2025-11-03")), "goals")
	group.AddFundToGroup(NewOpenEndFund("o1", "O1", account, MustParseAmount("3.33"), MustParseAmount("100"), 7), "goals")
	sub := NewFundGroup("sub", "Sub")
	sub.AddFundToGroup(NewFixedEndFund("f2", "F2", account, decimal.Zero, MustParseAmount("123.45"), date("2026-02-28")), "sub")
	sub.AddFundToGroup(NewOpenEndFund("o2", "O2", account, MustParseAmount("99"), MustParseAmount("100.10"), 13), "sub")
	group.AddFundToGroup(sub, "goals")

	amount := MustParseAmount("77.77")
	alloc, remainder := group.DistributeExtra(date("2025-06-15"), amount)

	assertAmount(t, amount.String(), alloc.Total().Add(remainder))

	// The group's reported allocation equals the sum over its children.
	subTotal := alloc["sub"].Sub.Total()
	assert.True(t, subTotal.LessThanOrEqual(alloc["sub"].Amount))
}

func TestDistributeMonthlyExactMinimum(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	fixed := NewFixedEndFund("car", "Car", account, decimal.Zero, MustParseAmount("1200"), date("2025-12-31"))
	group.AddFundToGroup(fixed, "goals")
	tree := NewTree(group)

	mma := tree.MinimalMonthlyAmount(2025, time.January)
	assert.True(t, mma.IsPositive())

	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, mma)

	assertAmount(t, mma.String(), alloc["goals"].Amount)
	assertAmount(t, mma.String(), alloc["goals"].Sub["car"].Amount)
	assertAmount(t, "0", remainder)
	assertAmount(t, "0", deficit)
	assertAmount(t, mma.String(), fixed.Balance())
}

func TestDistributeMonthlyDeficit(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	fixed := NewFixedEndFund("car", "Car", account, decimal.Zero, MustParseAmount("1200"), date("2025-12-31"))
	group.AddFundToGroup(fixed, "goals")
	tree := NewTree(group)

	mma := tree.MinimalMonthlyAmount(2025, time.January)
	half := mma.Mul(decimal.New(5, -1))

	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, half)

	// Everything scales by the ratio 0.5; the shortfall is the deficit.
	assertAmount(t, half.String(), alloc["goals"].Amount)
	assertAmount(t, half.String(), deficit)
	assertAmount(t, "0", remainder)
	assertAmount(t, half.String(), fixed.Balance())
}

func TestDistributeMonthlyZeroMinimum(t *testing.T) {
	account := NewAccount("main", "Main")
	group := NewFundGroup("goals", "Goals")
	group.AddFundToGroup(NewManualFund("m", "M", account, MustParseAmount("10")), "goals")
	tree := NewTree(group)

	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, MustParseAmount("100"))

	assertAmount(t, "0", alloc["goals"].Amount)
	assertAmount(t, "100", remainder)
	assertAmount(t, "0", deficit)
}

func TestDistributeMonthlySequentialFill(t *testing.T) {
	// The first group in file order is filled before the second sees any
	// money.
	account := NewAccount("main", "Main")
	first := NewFundGroup("first", "First")
	first.AddFundToGroup(NewOpenEndFund("a", "A", account, decimal.Zero, MustParseAmount("310"), 31), "first")
	second := NewFundGroup("second", "Second")
	second.AddFundToGroup(NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("310"), 31), "second")
	tree := NewTree(first, second)

	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, MustParseAmount("400"))

	assertAmount(t, "310", alloc["first"].Amount)
	assertAmount(t, "90", alloc["second"].Amount)
	assertAmount(t, "0", remainder)
	// The second group's minimum could not be met.
	assertAmount(t, "220", deficit)
}

func TestDistributeMonthlyUpfactor(t *testing.T) {
	account := NewAccount("main", "Main")
	first := NewFundGroup("first", "First")
	a := NewOpenEndFund("a", "A", account, decimal.Zero, MustParseAmount("300"), 30)
	first.AddFundToGroup(a, "first")

	second := NewFundGroup("second", "Second")
	second.SetMonthlyFactor(MustParseAmount("2"))
	b := NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("1000"), 100)
	second.AddFundToGroup(b, "second")
	tree := NewTree(first, second)

	// January minimums: first 300 (clamped at target), second 310.
	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, MustParseAmount("700"))

	// Pass 1 leaves 90 over; second's factor of 2 gives it room, so the
	// leftover is re-split there.
	assertAmount(t, "300", alloc["first"].Amount)
	assertAmount(t, "400", alloc["second"].Amount)
	assertAmount(t, "400", alloc["second"].Sub["b"].Amount)
	assertAmount(t, "0", remainder)
	assertAmount(t, "0", deficit)
	assertAmount(t, "400", b.Balance())
}

func TestDistributeMonthlyUpfactorPartialRoom(t *testing.T) {
	account := NewAccount("main", "Main")
	first := NewFundGroup("first", "First")
	a := NewOpenEndFund("a", "A", account, decimal.Zero, MustParseAmount("310"), 31)
	first.AddFundToGroup(a, "first")

	second := NewFundGroup("second", "Second")
	second.SetMonthlyFactor(MustParseAmount("1.5"))
	b := NewOpenEndFund("b", "B", account, decimal.Zero, MustParseAmount("6200"), 620)
	second.AddFundToGroup(b, "second")
	tree := NewTree(first, second)

	// Minimums: 310 each; input leaves 380 over after pass 1. Second's
	// stretch is capped at factor × its monthly saving: 465 − 310 = 155.
	alloc, remainder, deficit := tree.DistributeMonthly(2025, time.January, MustParseAmount("1000"))

	assertAmount(t, "310", alloc["first"].Amount)
	assertAmount(t, "465", alloc["second"].Amount)
	assertAmount(t, "225", remainder)
	assertAmount(t, "0", deficit)
	assertAmount(t, "465", b.Balance())
}

func TestDistributeMonthlyConservation(t *testing.T) {
	account := NewAccount("main", "Main")
	first := NewFundGroup("first", "First")
	first.AddFundToGroup(NewFixedEndFund("f1", "F1", account, MustParseAmount("10.01"), MustParseAmount("333.33"), date("2025-09-14")), "first")
	sub := NewFundGroup("sub", "Sub")
	sub.AddFundToGroup(NewOpenEndFund("o1", "O1", account, MustParseAmount("7"), MustParseAmount("77.70"), 11), "sub")
	first.AddFundToGroup(sub, "first")
	second := NewFundGroup("second", "Second")
	second.SetMonthlyFactor(MustParseAmount("3"))
	second.AddFundToGroup(NewOpenEndFund("o2", "O2", account, decimal.Zero, MustParseAmount("450"), 90), "second")
	tree := NewTree(first, second)

	amount := MustParseAmount("246.80")
	alloc, remainder, _ := tree.DistributeMonthly(2025, time.February, amount)

	assertAmount(t, amount.String(), alloc.Total().Add(remainder))
}
