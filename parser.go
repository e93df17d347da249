package ini

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-ini/internal/lexer"
	"github.com/KimNorgaard/go-ini/internal/token"
)

// ParseStructure parses INI text into a Structure.
//
// The text is split into lines on '\n'. Everything from the first ';' on a
// line is a comment. Blank lines are skipped, lines starting with '[' open
// a section, and all other lines are nodes of the current section. Nodes
// before the first header belong to the section named "".
//
// Parsing stops at the first malformed line; the returned *Error records
// its line number.
func ParseStructure(text string, opts ...Option) (*Structure, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	p := &parser{l: lexer.New(text), logger: o.logger}
	return p.parse()
}

// parser builds a Structure from the lexer's line tokens.
type parser struct {
	l      *lexer.Lexer
	logger *slog.Logger
}

func (p *parser) parse() (*Structure, error) {
	s := NewStructure()
	current := NewHeader("")

	for tok := p.l.NextToken(); tok.Type != token.EOF; tok = p.l.NextToken() {
		switch tok.Type {
		case token.HEADER:
			h, err := ParseHeader(tok.Literal)
			if err != nil {
				return nil, p.fail(tok, err)
			}
			current = h
			p.logger.Debug("ini: section", slog.String("header", h.Name()), slog.Int("line", tok.Line))
		case token.NODE:
			n, err := ParseNode(tok.Literal)
			if err != nil {
				return nil, p.fail(tok, err)
			}
			s.AddNode(current, n)
			p.logger.Debug("ini: node",
				slog.String("header", current.Name()),
				slog.String("name", n.Name()),
				slog.Int("line", tok.Line))
		default:
			return nil, fmt.Errorf("ini: line %d: unexpected token %s", tok.Line, tok.Type)
		}
	}
	return s, nil
}

// fail records the token's line on a parse error.
func (p *parser) fail(tok token.Token, err error) error {
	var e *Error
	if errors.As(err, &e) {
		e.Line = tok.Line
	}
	p.logger.Debug("ini: parse failed", slog.Int("line", tok.Line), slog.Any("error", err))
	return err
}
