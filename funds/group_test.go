package funds

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

// fixtureTree builds:
//
//	goals
//	├── car (fixed)
//	└── longterm
//	    └── house (fixed)
//	spending
//	└── buffer (open)
func fixtureTree(account *Account) *Tree {
	goals := NewFundGroup("goals", "Goals")
	car := NewFixedEndFund("car", "Car", account, decimal.Zero, MustParseAmount("1000"), date("2025-12-31"))
	goals.AddFundToGroup(car, "goals")
	account.AttachFund(car)

	longterm := NewFundGroup("longterm", "Long term")
	house := NewFixedEndFund("house", "House", account, decimal.Zero, MustParseAmount("5000"), date("2030-01-01"))
	longterm.AddFundToGroup(house, "longterm")
	account.AttachFund(house)
	goals.AddFundToGroup(longterm, "goals")

	spending := NewFundGroup("spending", "Spending")
	buffer := NewOpenEndFund("buffer", "Buffer", account, decimal.Zero, MustParseAmount("300"), 30)
	spending.AddFundToGroup(buffer, "spending")
	account.AttachFund(buffer)

	return NewTree(goals, spending)
}

func TestContainsKey(t *testing.T) {
	tree := fixtureTree(NewAccount("main", "Main"))

	for _, key := range []string{"goals", "car", "longterm", "house", "spending", "buffer"} {
		assert.True(t, tree.ContainsKey(key), "expected key %q", key)
	}
	assert.False(t, tree.ContainsKey("boat"))
}

func TestFundByKey(t *testing.T) {
	tree := fixtureTree(NewAccount("main", "Main"))

	house := tree.FundByKey("house")
	assert.NotZero(t, house)
	assert.Equal(t, "House", house.Name())

	group := tree.FundByKey("longterm")
	_, ok := group.(*FundGroup)
	assert.True(t, ok)

	assert.Zero(t, tree.FundByKey("boat"))
}

func TestAddFundToGroup(t *testing.T) {
	account := NewAccount("main", "Main")

	t.Run("adds to a nested group", func(t *testing.T) {
		tree := fixtureTree(account)
		boat := NewFixedEndFund("boat", "Boat", account, decimal.Zero, MustParseAmount("800"), date("2026-06-01"))

		assert.NoError(t, tree.AddFundToGroup(boat, "longterm"))
		assert.Equal(t, "Boat", tree.FundByKey("boat").Name())
	})

	t.Run("rejects a taken key", func(t *testing.T) {
		tree := fixtureTree(account)
		dup := NewFixedEndFund("house", "Other house", account, decimal.Zero, MustParseAmount("1"), date("2026-06-01"))

		err := tree.AddFundToGroup(dup, "goals")
		var dupErr *DuplicateKeyError
		assert.True(t, errors.As(err, &dupErr))
	})

	t.Run("rejects an unknown group", func(t *testing.T) {
		tree := fixtureTree(account)
		boat := NewFixedEndFund("boat", "Boat", account, decimal.Zero, MustParseAmount("800"), date("2026-06-01"))

		err := tree.AddFundToGroup(boat, "nope")
		var notFound *NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("rejects a leaf as parent", func(t *testing.T) {
		tree := fixtureTree(account)
		boat := NewFixedEndFund("boat", "Boat", account, decimal.Zero, MustParseAmount("800"), date("2026-06-01"))

		assert.Error(t, tree.AddFundToGroup(boat, "car"))
	})
}

func TestRemoveFundByKey(t *testing.T) {
	t.Run("removes a leaf", func(t *testing.T) {
		tree := fixtureTree(NewAccount("main", "Main"))

		removed, err := tree.RemoveFundByKey("house")
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.False(t, tree.ContainsKey("house"))
	})

	t.Run("refuses a non-empty group", func(t *testing.T) {
		tree := fixtureTree(NewAccount("main", "Main"))

		_, err := tree.RemoveFundByKey("longterm")
		var nonEmpty *NonEmptyRemovalError
		assert.True(t, errors.As(err, &nonEmpty))
		assert.True(t, tree.ContainsKey("longterm"))
	})

	t.Run("removes an emptied group", func(t *testing.T) {
		tree := fixtureTree(NewAccount("main", "Main"))

		_, err := tree.RemoveFundByKey("house")
		assert.NoError(t, err)
		removed, err := tree.RemoveFundByKey("longterm")
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("removes an empty top-level group", func(t *testing.T) {
		tree := fixtureTree(NewAccount("main", "Main"))
		tree.AddGroup(NewFundGroup("misc", "Misc"))

		removed, err := tree.RemoveFundByKey("misc")
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 2, len(tree.Groups()))
	})

	t.Run("unknown key removes nothing", func(t *testing.T) {
		tree := fixtureTree(NewAccount("main", "Main"))

		removed, err := tree.RemoveFundByKey("boat")
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestAccounts(t *testing.T) {
	t.Run("duplicate keys rejected", func(t *testing.T) {
		accounts := NewAccounts()
		assert.NoError(t, accounts.Add(NewAccount("main", "Main")))
		assert.Error(t, accounts.Add(NewAccount("main", "Other")))
	})

	t.Run("removal requires no funds", func(t *testing.T) {
		accounts := NewAccounts()
		account := NewAccount("main", "Main")
		assert.NoError(t, accounts.Add(account))
		fixtureTree(account)

		var nonEmpty *NonEmptyRemovalError
		assert.True(t, errors.As(accounts.Remove("main"), &nonEmpty))

		account.DetachFund("car")
		account.DetachFund("house")
		account.DetachFund("buffer")
		assert.NoError(t, accounts.Remove("main"))
		assert.Equal(t, 0, accounts.Len())
	})

	t.Run("unknown key", func(t *testing.T) {
		accounts := NewAccounts()
		var notFound *NotFoundError
		assert.True(t, errors.As(accounts.Remove("nope"), &notFound))
	})
}
