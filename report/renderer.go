package report

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// Renderer renders model views against a terminal writer.
type Renderer struct {
	styles *Styles
	width  int
}

// NewRenderer creates a renderer for the given writer. When the writer is a
// terminal its width bounds table layout; otherwise a fixed width is used.
func NewRenderer(w io.Writer) *Renderer {
	width := 100
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return &Renderer{styles: NewStyles(w), width: width}
}

// Styles returns the style helpers bound to the renderer's writer.
func (r *Renderer) Styles() *Styles { return r.styles }

func (r *Renderer) euro(d decimal.Decimal) string {
	return r.styles.Amount("€ " + funds.FormatAmount(d))
}

// fundLabel renders the one-line view of a fund used in trees.
func (r *Renderer) fundLabel(f funds.Fund) string {
	switch f := f.(type) {
	case *funds.FundGroup:
		return fmt.Sprintf("%s: %s", r.styles.Group(f.Name()), r.progress(f.Balance(), f.Target()))
	case *funds.FixedEndFund:
		return fmt.Sprintf("%s: %s", r.styles.Fixed(f.Name()), r.progress(f.Balance(), f.Target()))
	case *funds.OpenEndFund:
		return fmt.Sprintf("%s: %s", r.styles.Open(f.Name()), r.progress(f.Balance(), f.Target()))
	case *funds.ManualFund:
		return fmt.Sprintf("%s: %s", r.styles.Manual(f.Name()), r.euro(f.Balance()))
	}
	return f.Name()
}

// progress renders "€ balance/€ target (pct %)", leaving the percentage out
// when the target is zero.
func (r *Renderer) progress(balance, target decimal.Decimal) string {
	s := fmt.Sprintf("%s/%s", r.euro(balance), r.euro(target))
	if target.IsPositive() {
		pct := balance.Div(target).Mul(decimal.NewFromInt(100))
		s += r.styles.Dim(fmt.Sprintf(" (%s %%)", pct.StringFixed(1)))
	}
	return s
}

// displayType maps a fund to its human-readable variant name.
func displayType(f funds.Fund) string {
	switch f.(type) {
	case *funds.FundGroup:
		return "Group"
	case *funds.FixedEndFund:
		return "Fixed"
	case *funds.OpenEndFund:
		return "Open"
	case *funds.ManualFund:
		return "Manual"
	}
	return ""
}
