package cli

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/dhoekstra2000/savingfunds/funds"
)

func TestNewSessionMissingFile(t *testing.T) {
	globals := &Globals{File: filepath.Join(t.TempDir(), "funds.yaml")}

	s, err := newSession(globals)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.model.Accounts.Len())
	assert.Equal(t, 0, len(s.model.Funds.Groups()))
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := parsePositiveAmount("12.34", "amount")
		assert.NoError(t, err)
		assert.True(t, d.Equal(funds.MustParseAmount("12.34")))
	})

	t.Run("not a decimal", func(t *testing.T) {
		_, err := parsePositiveAmount("abc", "amount")
		var parseErr *funds.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("zero", func(t *testing.T) {
		_, err := parsePositiveAmount("0", "amount")
		var nonPositive *funds.NonPositiveError
		assert.True(t, errors.As(err, &nonPositive))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := parsePositiveAmount("-1", "target")
		assert.Error(t, err)
	})
}

func TestParseWhen(t *testing.T) {
	t.Run("empty defaults to today", func(t *testing.T) {
		when, err := parseWhen("")
		assert.NoError(t, err)
		now := time.Now()
		assert.Equal(t, now.Year(), when.Year())
		assert.Equal(t, now.Month(), when.Month())
		assert.Equal(t, now.Day(), when.Day())
	})

	t.Run("explicit date", func(t *testing.T) {
		when, err := parseWhen("2025-02-03")
		assert.NoError(t, err)
		assert.Equal(t, "2025-02-03", when.Format("2006-01-02"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := parseWhen("tomorrow")
		var parseErr *funds.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestParseMonth(t *testing.T) {
	month, err := parseMonth(2)
	assert.NoError(t, err)
	assert.Equal(t, time.February, month)

	_, err = parseMonth(0)
	assert.Error(t, err)
	_, err = parseMonth(13)
	assert.Error(t, err)
}
