package css

import (
	"fmt"
	"strings"
)

// Node kind discriminant.
// ENUM(rule, container, other)
type NodeKind int

// Node is a single item of a parsed stylesheet. The set of implementations is
// closed: *Rule, *Container and *Other.
type Node interface {
	Kind() NodeKind
	node()
}

// Rule is a style rule: one or more selectors followed by a declaration block.
type Rule struct {
	Selectors    []string // Selector strings as written, split on top-level commas
	Declarations int      // Number of declarations in the block
}

func (*Rule) Kind() NodeKind { return NodeKindRule }
func (*Rule) node()          {}

// Container is a conditional or grouping at-rule (@media, @supports, ...)
// holding nested nodes.
type Container struct {
	Name     string // At-rule name without "@", lower case (e.g. "media")
	Prelude  string // Condition text (e.g. "screen and (min-width: 40em)")
	Children []Node
}

func (*Container) Kind() NodeKind { return NodeKindContainer }
func (*Container) node()          {}

// Other is anything that contributes nothing to metrics: comments and at-rules
// which do not group style rules.
type Other struct {
	Name string // "comment" or at-rule name without "@"
}

func (*Other) Kind() NodeKind { return NodeKindOther }
func (*Other) node()          {}

// Document is a parsed stylesheet.
type Document struct {
	Nodes    []Node   // Top-level nodes in source order
	Warnings []string // Problems tolerated by the parser
}

// containerRules lists at-rules whose block holds style rules to be counted.
var containerRules = map[string]bool{
	"media":         true,
	"supports":      true,
	"document":      true,
	"-moz-document": true,
	"host":          true,
	"container":     true,
	"layer":         true,
	"scope":         true,
}

// IsContainerRule reports whether at-rule name (with or without leading "@")
// groups nested style rules.
func IsContainerRule(name string) bool {
	return containerRules[strings.ToLower(strings.TrimPrefix(name, "@"))]
}

// ParseError is returned when stylesheet text cannot be turned into a Document.
type ParseError struct {
	Source  string // What was parsed, may be empty
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based, 0 when unknown
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("css parse error")
	if e.Source != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " at line %d, column %d", e.Line, e.Column)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// splitSelectors splits selector group text on top-level commas. Commas inside
// parentheses, attribute brackets and strings do not separate selectors,
// neither do escaped ones. Comments are dropped, whitespace runs are
// collapsed to a single space and empty parts dropped.
func splitSelectors(text string) []string {
	var (
		selectors []string
		sb        strings.Builder
		depth     int
		quote     byte
		space     bool
	)

	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
		space = false
	}

	// ASCII bytes never occur inside multi-byte UTF-8 sequences
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			sb.WriteByte(c)
			if c == '\\' && i+1 < len(text) {
				i++
				sb.WriteByte(text[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '/':
			if strings.HasPrefix(text[i:], "/*") {
				if end := strings.Index(text[i+2:], "*/"); end >= 0 {
					i += end + 3
				} else {
					i = len(text)
				}
				continue
			}
		case '"', '\'':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush()
				continue
			}
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			space = false
		}
		sb.WriteByte(c)
		if c == '\\' && i+1 < len(text) {
			i++
			sb.WriteByte(text[i])
		}
	}
	flush()
	return selectors
}
