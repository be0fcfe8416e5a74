package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a real-world container of money at an institution. It holds
// non-owning references to the leaf funds saved on it; the fund tree owns
// the funds themselves.
type Account struct {
	key, name string
	funds     []Leaf
}

// NewAccount creates an account without funds.
func NewAccount(key, name string) *Account {
	return &Account{key: key, name: name}
}

func (a *Account) Key() string { return a.key }
func (a *Account) Name() string { return a.name }
func (a *Account) Rename(name string) { a.name = name }

// Funds returns the leaf funds on this account in attachment order.
func (a *Account) Funds() []Leaf { return a.funds }

// AttachFund registers a leaf fund on this account.
func (a *Account) AttachFund(f Leaf) { a.funds = append(a.funds, f) }

// DetachFund drops the reference to the leaf fund with the given key.
func (a *Account) DetachFund(key string) {
	for i, f := range a.funds {
		if f.Key() == key {
			a.funds = append(a.funds[:i], a.funds[i+1:]...)
			return
		}
	}
}

// MinimalBalance is the sum of all fund balances on the account, the least
// the real account must hold.
func (a *Account) MinimalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, f := range a.funds {
		total = total.Add(f.Balance())
	}
	return total
}

// HasManualFunds reports whether any fund on the account is manual.
func (a *Account) HasManualFunds() bool {
	for _, f := range a.funds {
		if _, ok := f.(*ManualFund); ok {
			return true
		}
	}
	return false
}

// DistributeInterest splits interest credited to the account between its
// manual and non-manual funds. The split is proportional to the two sides'
// balances; the non-manual side is then distributed by daily saving rate
// and clamped by remainder to save, with any slack spilling back to the
// manual side. Manual funds absorb without an upper bound. When the
// non-manual funds have no saving rate at all, the whole amount goes to the
// manual side.
//
// Returns the per-fund allocation and the unused remainder; balances are
// updated in place.
func (a *Account) DistributeInterest(on time.Time, amount decimal.Decimal) (Allocation, decimal.Decimal) {
	var manual, nonManual []Leaf
	for _, f := range a.funds {
		if _, ok := f.(*ManualFund); ok {
			manual = append(manual, f)
		} else {
			nonManual = append(nonManual, f)
		}
	}

	manualBalance := decimal.Zero
	for _, f := range manual {
		manualBalance = manualBalance.Add(f.Balance())
	}
	nonManualBalance := decimal.Zero
	for _, f := range nonManual {
		nonManualBalance = nonManualBalance.Add(f.Balance())
	}

	manualAmount := decimal.Zero
	nonManualAmount := amount
	if manualBalance.Add(nonManualBalance).IsPositive() {
		manualAmount = amount.Mul(manualBalance).Div(manualBalance.Add(nonManualBalance))
		nonManualAmount = amount.Sub(manualAmount)
	}

	rates := make(map[string]decimal.Decimal, len(nonManual))
	totalRate := decimal.Zero
	for _, f := range nonManual {
		r := f.DailySavingRate(on)
		rates[f.Key()] = r
		totalRate = totalRate.Add(r)
	}

	alloc := make(Allocation, len(a.funds))
	if totalRate.IsPositive() {
		allocated := decimal.Zero
		for _, f := range nonManual {
			share := decimal.Min(nonManualAmount.Mul(rates[f.Key()]).Div(totalRate), f.RemainderToSave())
			alloc[f.Key()] = &Share{Amount: share}
			allocated = allocated.Add(share)
		}
		// Slack the non-manual side could not absorb spills to the manual
		// funds.
		manualAmount = manualAmount.Add(nonManualAmount.Sub(allocated))
	} else {
		// No saving rate anywhere: redirect everything to the manual side.
		for _, f := range nonManual {
			alloc[f.Key()] = &Share{Amount: decimal.Zero}
		}
		manualAmount = amount
	}

	for _, f := range manual {
		share := decimal.Zero
		if manualAmount.IsPositive() && manualBalance.IsPositive() {
			share = f.Balance().Mul(manualAmount).Div(manualBalance)
		}
		alloc[f.Key()] = &Share{Amount: share}
	}

	for _, f := range a.funds {
		if share, ok := alloc[f.Key()]; ok {
			f.SetBalance(f.Balance().Add(share.Amount))
		}
	}

	return alloc, amount.Sub(alloc.Total())
}

// Accounts is an insertion-ordered collection of accounts keyed by account
// key.
type Accounts struct {
	list  []*Account
	index map[string]*Account
}

// NewAccounts creates an empty collection.
func NewAccounts() *Accounts {
	return &Accounts{index: make(map[string]*Account)}
}

// Add inserts an account; the key must be free.
func (s *Accounts) Add(a *Account) error {
	if _, ok := s.index[a.key]; ok {
		return &DuplicateKeyError{Kind: "account", Key: a.key}
	}
	s.list = append(s.list, a)
	s.index[a.key] = a
	return nil
}

// Get returns the account with the given key.
func (s *Accounts) Get(key string) (*Account, bool) {
	a, ok := s.index[key]
	return a, ok
}

// Remove deletes the account with the given key. An account that still
// owns funds cannot be removed.
func (s *Accounts) Remove(key string) error {
	a, ok := s.index[key]
	if !ok {
		return &NotFoundError{Kind: "account", Key: key}
	}
	if len(a.funds) > 0 {
		return &NonEmptyRemovalError{Kind: "account", Key: key}
	}
	delete(s.index, key)
	for i, other := range s.list {
		if other.key == key {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	return nil
}

// All returns the accounts in insertion order.
func (s *Accounts) All() []*Account { return s.list }

// Len returns the number of accounts.
func (s *Accounts) Len() int { return len(s.list) }
