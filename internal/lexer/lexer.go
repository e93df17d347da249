package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-ini/internal/textutil"
	"github.com/KimNorgaard/go-ini/internal/token"
)

// Lexer holds the state for tokenizing INI source line by line.
type Lexer struct {
	input string
	line  int  // number of the line most recently consumed
	done  bool // set once the final line has been consumed
}

// New creates and returns a new Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next significant line of the input. Comments are
// removed and blank lines are skipped. Once the input is exhausted it
// returns an EOF token on every call.
func (l *Lexer) NextToken() token.Token {
	for {
		raw, ok := l.readLine()
		if !ok {
			return token.Token{Type: token.EOF, Line: l.line}
		}

		lit := textutil.Trim(textutil.StripComment(raw))
		if lit == "" {
			continue
		}
		return token.Token{Type: token.Classify(lit), Literal: lit, Line: l.line}
	}
}

// Tokens drains the lexer and returns every significant line up to, but
// not including, EOF.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

// readLine consumes the input up to the next '\n'. Only '\n' separates
// lines; a '\r' before it is left for trimming to remove.
func (l *Lexer) readLine() (string, bool) {
	if l.done {
		return "", false
	}
	l.line++
	line, rest, found := strings.Cut(l.input, "\n")
	if !found {
		l.done = true
		l.input = ""
		return line, true
	}
	l.input = rest
	return line, true
}
