package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// Load reads and validates the model from the given file.
func Load(path string) (*funds.Model, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(contents)
}

// LoadBytes builds the model from a YAML document.
func LoadBytes(contents []byte) (*funds.Model, error) {
	var doc document
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("invalid funds file: %w", err)
	}

	model := funds.NewModel()
	for _, node := range doc.Accounts {
		if err := model.Accounts.Add(funds.NewAccount(node.Key, node.Name)); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	for _, node := range doc.Funds {
		if node.Type != "group" {
			return nil, fmt.Errorf("top-level fund '%s' must be a group, got type '%s'", node.Key, node.Type)
		}
		group, err := buildGroup(node, model, seen)
		if err != nil {
			return nil, err
		}
		model.Funds.AddGroup(group)
	}

	return model, nil
}

func buildGroup(node *fundNode, model *funds.Model, seen map[string]bool) (*funds.FundGroup, error) {
	if err := claimKey(node.Key, seen); err != nil {
		return nil, err
	}

	group := funds.NewFundGroup(node.Key, node.Name)
	if node.MonthlyFactor != "" {
		factor, err := funds.ParseAmount(node.MonthlyFactor)
		if err != nil {
			return nil, fmt.Errorf("fund group '%s': invalid monthly-factor: %w", node.Key, err)
		}
		group.SetMonthlyFactor(factor)
	}

	for _, child := range node.Funds {
		if child.Type == "group" {
			sub, err := buildGroup(child, model, seen)
			if err != nil {
				return nil, err
			}
			group.AddFundToGroup(sub, group.Key())
			continue
		}

		leaf, err := buildLeaf(child, model, seen)
		if err != nil {
			return nil, err
		}
		group.AddFundToGroup(leaf, group.Key())
		leaf.Account().AttachFund(leaf)
	}

	return group, nil
}

func buildLeaf(node *fundNode, model *funds.Model, seen map[string]bool) (funds.Leaf, error) {
	if err := claimKey(node.Key, seen); err != nil {
		return nil, err
	}

	account, ok := model.Accounts.Get(node.Account)
	if !ok {
		return nil, fmt.Errorf("fund '%s': %w", node.Key, &funds.NotFoundError{Kind: "account", Key: node.Account})
	}

	balance, err := funds.ParseAmount(node.Balance)
	if err != nil {
		return nil, fmt.Errorf("fund '%s': invalid balance: %w", node.Key, err)
	}

	switch node.Type {
	case "fixed":
		target, err := funds.ParseAmount(node.Target)
		if err != nil {
			return nil, fmt.Errorf("fund '%s': invalid target: %w", node.Key, err)
		}
		targetDate, err := time.Parse("2006-01-02", node.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("fund '%s': %w", node.Key, &funds.ParseError{Kind: "date", Value: node.TargetDate})
		}
		return funds.NewFixedEndFund(node.Key, node.Name, account, balance, target, targetDate), nil
	case "open":
		target, err := funds.ParseAmount(node.Target)
		if err != nil {
			return nil, fmt.Errorf("fund '%s': invalid target: %w", node.Key, err)
		}
		if node.Days <= 0 {
			return nil, fmt.Errorf("fund '%s': %w", node.Key, &funds.NonPositiveError{What: "days"})
		}
		return funds.NewOpenEndFund(node.Key, node.Name, account, balance, target, node.Days), nil
	case "manual":
		return funds.NewManualFund(node.Key, node.Name, account, balance), nil
	default:
		return nil, fmt.Errorf("fund '%s' has unknown type '%s'", node.Key, node.Type)
	}
}

func claimKey(key string, seen map[string]bool) error {
	if key == "" {
		return fmt.Errorf("fund without a key in funds file")
	}
	if seen[key] {
		return &funds.DuplicateKeyError{Kind: "fund", Key: key}
	}
	seen[key] = true
	return nil
}
