package store

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// Save writes the whole model to the given file. The document is first
// written to a temporary file in the same directory and then renamed over
// the target, so readers never observe a partial write.
func Save(path string, model *funds.Model) error {
	doc := &document{
		Accounts: make([]*accountNode, 0, model.Accounts.Len()),
		Funds:    make([]*fundNode, 0, len(model.Funds.Groups())),
	}
	for _, a := range model.Accounts.All() {
		doc.Accounts = append(doc.Accounts, &accountNode{Key: a.Key(), Name: a.Name()})
	}
	for _, g := range model.Funds.Groups() {
		doc.Funds = append(doc.Funds, groupNode(g))
	}

	contents, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".funds-*.yaml")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func groupNode(g *funds.FundGroup) *fundNode {
	node := &fundNode{
		Type:          "group",
		Key:           g.Key(),
		Name:          g.Name(),
		MonthlyFactor: funds.FormatAmount(g.MonthlyFactor()),
		Funds:         make([]*fundNode, 0, len(g.Funds())),
	}
	for _, f := range g.Funds() {
		node.Funds = append(node.Funds, toNode(f))
	}
	return node
}

func toNode(f funds.Fund) *fundNode {
	switch f := f.(type) {
	case *funds.FundGroup:
		return groupNode(f)
	case *funds.FixedEndFund:
		return &fundNode{
			Type:       "fixed",
			Key:        f.Key(),
			Name:       f.Name(),
			Account:    f.Account().Key(),
			Balance:    funds.FormatAmount(f.Balance()),
			Target:     funds.FormatAmount(f.Target()),
			TargetDate: f.TargetDate().Format("2006-01-02"),
		}
	case *funds.OpenEndFund:
		return &fundNode{
			Type:    "open",
			Key:     f.Key(),
			Name:    f.Name(),
			Account: f.Account().Key(),
			Balance: funds.FormatAmount(f.Balance()),
			Target:  funds.FormatAmount(f.Target()),
			Days:    f.Days(),
		}
	case *funds.ManualFund:
		return &fundNode{
			Type:    "manual",
			Key:     f.Key(),
			Name:    f.Name(),
			Account: f.Account().Key(),
			Balance: funds.FormatAmount(f.Balance()),
		}
	}
	return nil
}
