package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"cssm/common"
)

// Parser parses CSS stylesheets into a Document.
type Parser struct {
	log      *zap.Logger
	backend  common.ParserBackend
	tolerant bool
}

// WithBackend selects parser implementation, tdewolff is used by default.
func WithBackend(backend common.ParserBackend) func(*Parser) {
	return func(p *Parser) {
		p.backend = backend
	}
}

// WithTolerance makes structural problems non fatal, they are recorded as
// Document warnings instead.
func WithTolerance(tolerant bool) func(*Parser) {
	return func(p *Parser) {
		p.tolerant = tolerant
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, options ...func(*Parser)) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser"), backend: common.ParserBackendTdewolff}
	for _, setOpt := range options {
		setOpt(p)
	}
	return p
}

// Backend returns selected parser implementation.
func (p *Parser) Backend() common.ParserBackend {
	return p.backend
}

// Parse parses CSS text into a Document. The optional source parameter
// identifies what's being parsed (for logging and errors).
func (p *Parser) Parse(data []byte, source ...string) (*Document, error) {
	var src string
	if len(source) > 0 {
		src = source[0]
	}
	p.log.Debug("Parsing CSS", zap.String("source", src), zap.Int("bytes", len(data)), zap.Stringer("backend", p.backend))

	switch p.backend {
	case common.ParserBackendDouceur:
		return p.parseDouceur(data, src)
	default:
		return p.parseTokens(data, src)
	}
}

// tokenReader builds Document from tdewolff token stream. Selector text is
// kept as written and braces are balanced here, so unterminated blocks and
// stray closing braces are reported.
type tokenReader struct {
	*Parser
	input  *parse.Input
	lexer  *css.Lexer
	doc    *Document
	source string

	tt     css.TokenType
	data   []byte
	offset int // input offset of the current token
}

func (p *Parser) parseTokens(data []byte, source string) (*Document, error) {
	input := parse.NewInput(bytes.NewReader(data))
	r := &tokenReader{
		Parser: p,
		input:  input,
		lexer:  css.NewLexer(input),
		doc:    &Document{Nodes: make([]Node, 0), Warnings: make([]string, 0)},
		source: source,
	}
	r.next()

	nodes, err := r.parseNodes(false)
	r.doc.Nodes = nodes
	if err != nil {
		return nil, err
	}
	return r.doc, nil
}

// next advances to the next token. ErrorToken marks end of input.
func (r *tokenReader) next() {
	r.offset = r.input.Offset()
	r.tt, r.data = r.lexer.Next()
}

// parseNodes reads nodes until end of input or, when inBlock is set, until the
// closing brace of the enclosing block, which is consumed.
func (r *tokenReader) parseNodes(inBlock bool) ([]Node, error) {
	var nodes []Node
	for {
		switch r.tt {
		case css.ErrorToken:
			if inBlock {
				return nodes, r.fail(r.offset, "missing '}'")
			}
			return nodes, nil

		case css.WhitespaceToken, css.SemicolonToken, css.CDOToken, css.CDCToken:
			r.next()

		case css.CommentToken:
			nodes = append(nodes, &Other{Name: "comment"})
			r.next()

		case css.RightBraceToken:
			if inBlock {
				r.next()
				return nodes, nil
			}
			if err := r.fail(r.offset, "unexpected '}'"); err != nil {
				return nodes, err
			}
			r.next()

		case css.AtKeywordToken:
			node, err := r.parseAtRule()
			nodes = append(nodes, node)
			if err != nil {
				return nodes, err
			}

		default:
			rule, err := r.parseRule()
			if rule != nil {
				nodes = append(nodes, rule)
			}
			if err != nil {
				return nodes, err
			}
		}
	}
}

// parseAtRule reads at-rule starting at the current at-keyword token.
func (r *tokenReader) parseAtRule() (Node, error) {
	name := atRuleName(r.data)
	r.next()
	prelude := strings.Join(strings.Fields(r.readPrelude(true)), " ")

	switch r.tt {
	case css.LeftBraceToken:
		r.next()
		if !IsContainerRule(name) {
			r.log.Debug("Skipping @-rule block", zap.String("rule", name))
			return &Other{Name: name}, r.skipBlock()
		}
		cont := &Container{Name: name, Prelude: prelude}
		children, err := r.parseNodes(true)
		cont.Children = children
		r.log.Debug("Parsed @-rule block", zap.String("rule", name), zap.String("prelude", prelude), zap.Int("nodes", len(children)))
		return cont, err
	case css.SemicolonToken:
		r.next()
	}
	// Simple @-rule without block (e.g., @import, @charset), closing brace of
	// the enclosing block or end of input terminate it as well
	r.log.Debug("Skipping @-rule", zap.String("rule", name))
	return &Other{Name: name}, nil
}

// parseRule reads style rule starting at the current token. Text which is not
// followed by a declaration block is reported and dropped.
func (r *tokenReader) parseRule() (*Rule, error) {
	start := r.offset
	text := r.readPrelude(false)
	if r.tt != css.LeftBraceToken {
		r.log.Debug("Selector without declaration block", zap.String("text", text))
		return nil, r.fail(start, "selector without declaration block")
	}
	r.next()

	rule := &Rule{Selectors: splitSelectors(text)}
	n, err := r.countDeclarations()
	rule.Declarations = n
	if err != nil {
		return rule, err
	}
	if len(rule.Selectors) == 0 {
		return nil, r.fail(start, "selector missing")
	}
	return rule, nil
}

// readPrelude consumes tokens up to a block start, a closing brace or end of
// input, optionally stopping at semicolon. Tokens are kept as written,
// comments are dropped.
func (r *tokenReader) readPrelude(stopAtSemicolon bool) string {
	var sb strings.Builder
	for {
		switch r.tt {
		case css.ErrorToken, css.LeftBraceToken, css.RightBraceToken:
			return sb.String()
		case css.SemicolonToken:
			if stopAtSemicolon {
				return sb.String()
			}
		case css.CommentToken:
			r.next()
			continue
		}
		sb.Write(r.data)
		r.next()
	}
}

// countDeclarations consumes ruleset body up to and including its closing
// brace and returns number of declarations in it. Broken declarations never
// fail the parse, they do not influence rule structure.
func (r *tokenReader) countDeclarations() (int, error) {
	count := 0
	for {
		switch r.tt {
		case css.ErrorToken:
			return count, r.fail(r.offset, "missing '}'")
		case css.RightBraceToken:
			r.next()
			return count, nil
		case css.WhitespaceToken, css.CommentToken, css.SemicolonToken:
			r.next()
		case css.LeftBraceToken:
			r.next()
			if err := r.skipBlock(); err != nil {
				return count, err
			}
		default:
			ok, err := r.readDeclaration()
			if err != nil {
				return count, err
			}
			if ok {
				count++
			}
		}
	}
}

// readDeclaration consumes a single declaration up to ";" or the end of the
// block and reports whether it was well formed: a name followed by colon.
// Nested rules are skipped, they are not part of the model.
func (r *tokenReader) readDeclaration() (bool, error) {
	start := r.offset
	if r.tt == css.DelimToken && string(r.data) == "*" {
		// IE hack: *zoom: 1
		r.next()
	}
	custom := r.tt == css.CustomPropertyNameToken
	valid := custom || r.tt == css.IdentToken
	if valid {
		r.next()
		for r.tt == css.WhitespaceToken || r.tt == css.CommentToken {
			r.next()
		}
		valid = r.tt == css.ColonToken
	}

	for {
		switch r.tt {
		case css.ErrorToken, css.RightBraceToken:
			return r.checkDeclaration(start, valid), nil
		case css.SemicolonToken:
			ok := r.checkDeclaration(start, valid)
			r.next()
			return ok, nil
		case css.LeftBraceToken:
			r.next()
			if err := r.skipBlock(); err != nil {
				return false, err
			}
			if !custom {
				r.log.Debug("Skipping nested rule", zap.ByteString("data", r.input.Bytes()[start:r.offset]))
				return false, nil
			}
			continue
		}
		r.next()
	}
}

func (r *tokenReader) checkDeclaration(start int, valid bool) bool {
	if !valid {
		r.warn("ignoring malformed declaration", zap.ByteString("data", bytes.TrimSpace(r.input.Bytes()[start:r.offset])))
	}
	return valid
}

// skipBlock skips tokens up to and including the closing brace of the current
// block.
func (r *tokenReader) skipBlock() error {
	depth := 1
	for depth > 0 {
		switch r.tt {
		case css.ErrorToken:
			return r.fail(r.offset, "missing '}'")
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
		r.next()
	}
	return nil
}

// fail reports a structural problem found at input offset. In tolerant mode
// problem is recorded as document warning and nil is returned.
func (r *tokenReader) fail(offset int, msg string) error {
	pe := r.errorAt(offset, msg)
	if !r.tolerant {
		return pe
	}
	r.warn(pe.Error())
	return nil
}

// errorAt returns parse error positioned at input offset.
func (r *tokenReader) errorAt(offset int, msg string) *ParseError {
	perr := parse.NewError(bytes.NewReader(r.input.Bytes()), offset, msg)
	return &ParseError{Source: r.source, Line: perr.Line, Column: perr.Column, Message: msg, Err: perr}
}

func (r *tokenReader) warn(msg string, fields ...zap.Field) {
	r.doc.Warnings = append(r.doc.Warnings, msg)
	r.log.Debug("CSS problem tolerated", append([]zap.Field{zap.String("problem", msg)}, fields...)...)
}

// atRuleName returns lower case at-rule name without "@".
func atRuleName(data []byte) string {
	return strings.ToLower(strings.TrimPrefix(string(data), "@"))
}
