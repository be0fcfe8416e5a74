package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"github.com/dhoekstra2000/savingfunds/funds"
	"github.com/dhoekstra2000/savingfunds/store"
	"github.com/dhoekstra2000/savingfunds/telemetry"
)

// session holds the loaded model for the duration of one command.
type session struct {
	path      string
	model     *funds.Model
	collector *telemetry.Collector
}

// newSession loads the model from the configured file. A missing file
// yields an empty model, matching first-run behavior.
func newSession(globals *Globals) (*session, error) {
	s := &session{path: globals.File}
	if globals.Telemetry {
		s.collector = telemetry.New()
	}

	stop := s.collector.Start("load model")
	defer stop()

	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			s.model = funds.NewModel()
			return s, nil
		}
		return nil, err
	}

	model, err := store.Load(s.path)
	if err != nil {
		return nil, err
	}
	s.model = model
	return s, nil
}

// save writes the mutated model back, unless this is a dry run.
func (s *session) save(ctx *kong.Context, globals *Globals) error {
	if globals.DryRun {
		printInfof(ctx.Stdout, "Dry run: not writing '%s'.", s.path)
		return nil
	}

	stop := s.collector.Start("save model")
	defer stop()

	return store.Save(s.path, s.model)
}

// finish reports collected telemetry, if any.
func (s *session) finish(ctx *kong.Context) {
	if s.collector == nil {
		return
	}
	_, _ = fmt.Fprintln(ctx.Stderr)
	s.collector.Report(ctx.Stderr)
}

func (s *session) fundByKey(key string) (funds.Fund, error) {
	f := s.model.Funds.FundByKey(key)
	if f == nil {
		return nil, &funds.NotFoundError{Kind: "fund", Key: key}
	}
	return f, nil
}

func (s *session) accountByKey(key string) (*funds.Account, error) {
	a, ok := s.model.Accounts.Get(key)
	if !ok {
		return nil, &funds.NotFoundError{Kind: "account", Key: key}
	}
	return a, nil
}

// parsePositiveAmount parses a decimal argument that must be positive.
func parsePositiveAmount(value, what string) (decimal.Decimal, error) {
	d, err := funds.ParseAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, &funds.NonPositiveError{What: what}
	}
	return d, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &funds.ParseError{Kind: "date", Value: value}
	}
	return t, nil
}

// parseWhen resolves an optional --when flag, defaulting to today.
func parseWhen(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseDate(value)
}

func parseMonth(month int) (time.Month, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("the month must be between 1 and 12")
	}
	return time.Month(month), nil
}
