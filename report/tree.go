package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/dhoekstra2000/savingfunds/funds"
)

// FundTree renders the whole fund hierarchy, one tree per top-level group.
func (r *Renderer) FundTree(t *funds.Tree) string {
	var parts []string
	for _, g := range t.Groups() {
		parts = append(parts, r.groupTree(g).String())
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) groupTree(g *funds.FundGroup) *tree.Tree {
	node := tree.Root(r.fundLabel(g))
	for _, f := range g.Funds() {
		if sub, ok := f.(*funds.FundGroup); ok {
			node.Child(r.groupTree(sub))
			continue
		}
		node.Child(r.fundLabel(f))
	}
	return node
}

// AccountTree renders all accounts with the funds saved on them.
func (r *Renderer) AccountTree(accounts *funds.Accounts) string {
	root := tree.Root("Accounts")
	for _, a := range accounts.All() {
		label := fmt.Sprintf("%s %s", r.styles.Account(a.Name()), r.styles.Dim(fmt.Sprintf("(≥ %s)", "€ "+funds.FormatAmount(a.MinimalBalance()))))
		node := tree.Root(label)
		for _, f := range a.Funds() {
			node.Child(r.fundLabel(f))
		}
		root.Child(node)
	}
	return root.String()
}

// AllocationTree renders a distribution result against the fund tree it was
// computed over.
func (r *Renderer) AllocationTree(t *funds.Tree, alloc funds.Allocation) string {
	var parts []string
	for _, g := range t.Groups() {
		share, ok := alloc[g.Key()]
		if !ok {
			continue
		}
		parts = append(parts, r.allocationNode(g, share).String())
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) allocationNode(g *funds.FundGroup, share *funds.Share) *tree.Tree {
	node := tree.Root(fmt.Sprintf("%s: %s", r.styles.Group(g.Name()), r.euro(share.Amount)))
	for _, f := range g.Funds() {
		child, ok := share.Sub[f.Key()]
		if !ok {
			continue
		}
		if sub, isGroup := f.(*funds.FundGroup); isGroup && child.Sub != nil {
			node.Child(r.allocationNode(sub, child))
			continue
		}
		node.Child(fmt.Sprintf("%s: %s", f.Name(), r.euro(child.Amount)))
	}
	return node
}

// InterestAllocation renders the per-fund split of interest credited to an
// account.
func (r *Renderer) InterestAllocation(a *funds.Account, alloc funds.Allocation) string {
	root := tree.Root(r.styles.Account(a.Name()))
	for _, f := range a.Funds() {
		share, ok := alloc[f.Key()]
		if !ok {
			continue
		}
		root.Child(fmt.Sprintf("%s: %s", f.Name(), r.euro(share.Amount)))
	}
	return root.String()
}
