package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"go.uber.org/zap"
)

// parseDouceur uses douceur parser. It is less forgiving than tdewolff and
// does not report error positions, tolerance setting does not apply.
func (p *Parser) parseDouceur(data []byte, source string) (*Document, error) {
	sheet, err := parser.Parse(string(data))
	if err != nil {
		return nil, &ParseError{Source: source, Message: err.Error(), Err: err}
	}
	doc := &Document{Nodes: p.convertRules(sheet.Rules), Warnings: make([]string, 0)}
	p.log.Debug("Converted douceur stylesheet", zap.String("source", source), zap.Int("nodes", len(doc.Nodes)))
	return doc, nil
}

func (p *Parser) convertRules(rules []*dcss.Rule) []Node {
	nodes := make([]Node, 0, len(rules))
	for _, r := range rules {
		switch r.Kind {
		case dcss.QualifiedRule:
			text := r.Prelude
			if text == "" {
				text = strings.Join(r.Selectors, ",")
			}
			nodes = append(nodes, &Rule{Selectors: splitSelectors(text), Declarations: len(r.Declarations)})
		case dcss.AtRule:
			name := atRuleName([]byte(r.Name))
			if !IsContainerRule(name) {
				p.log.Debug("Skipping @-rule", zap.String("rule", name))
				nodes = append(nodes, &Other{Name: name})
				continue
			}
			nodes = append(nodes, &Container{
				Name:     name,
				Prelude:  strings.Join(strings.Fields(r.Prelude), " "),
				Children: p.convertRules(r.Rules),
			})
		default:
			nodes = append(nodes, &Other{Name: strings.ToLower(r.Name)})
		}
	}
	return nodes
}
