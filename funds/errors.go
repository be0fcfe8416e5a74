package funds

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Error types for model validation failures. Every command surfaces these
// as a single-line message and exit code 1.

// ParseError is returned when a value cannot be parsed as a decimal or date.
type ParseError struct {
	Kind  string // "amount" or "date"
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid %s", e.Value, e.Kind)
}

// NonPositiveError is returned when an amount, target, factor or day count
// is zero or negative where a positive value is required.
type NonPositiveError struct {
	What string // e.g. "amount", "target", "days"
}

func (e *NonPositiveError) Error() string {
	return fmt.Sprintf("the %s must be positive", e.What)
}

// NotFoundError is returned when a fund, group or account key is unknown.
type NotFoundError struct {
	Kind string // "fund", "fund group" or "account"
	Key  string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "fund group" {
		return fmt.Sprintf("no fund group with key '%s' found", e.Key)
	}
	return fmt.Sprintf("there is no %s with key '%s'", e.Kind, e.Key)
}

// DuplicateKeyError is returned when creating an entity whose key is
// already taken.
type DuplicateKeyError struct {
	Kind string // "fund" or "account"
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("there already exists a %s with key '%s'", e.Kind, e.Key)
}

// WrongVariantError is returned when an operation is invoked on a fund
// variant that does not support it.
type WrongVariantError struct {
	Key  string
	Want string // e.g. "a fund with its own balance", "a fund group"
}

func (e *WrongVariantError) Error() string {
	return fmt.Sprintf("fund with key '%s' is not %s", e.Key, e.Want)
}

// OverdrawError is returned when a withdrawal exceeds the current balance.
type OverdrawError struct {
	Balance decimal.Decimal
}

func (e *OverdrawError) Error() string {
	return fmt.Sprintf("the amount is more than the balance (%s); funds cannot be overdrawn", FormatAmount(e.Balance))
}

// NonEmptyRemovalError is returned when removing a group that still has
// children, or an account that still owns funds.
type NonEmptyRemovalError struct {
	Kind string // "fund group" or "account"
	Key  string
}

func (e *NonEmptyRemovalError) Error() string {
	if e.Kind == "account" {
		return fmt.Sprintf("account with key '%s' still has funds registered to it", e.Key)
	}
	return fmt.Sprintf("fund with key '%s' is a non-empty fund group", e.Key)
}
