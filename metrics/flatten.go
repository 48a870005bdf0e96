package metrics

import (
	"cssm/css"
)

// FlatResult holds leaf rules and their selectors in document order.
type FlatResult struct {
	Rules     []*css.Rule
	Selectors []string
}

// Flatten walks document depth first, descending into containers, and
// collects style rules and all of their selectors. Nodes of other kinds are
// skipped.
func Flatten(doc *css.Document) FlatResult {
	var res FlatResult
	if doc == nil {
		return res
	}
	res.walk(doc.Nodes)
	return res
}

func (res *FlatResult) walk(nodes []css.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *css.Rule:
			res.Rules = append(res.Rules, n)
			res.Selectors = append(res.Selectors, n.Selectors...)
		case *css.Container:
			res.walk(n.Children)
		case *css.Other:
		default:
			// css.Node is sealed, nothing else is expected here
		}
	}
}
