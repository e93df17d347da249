package token

// Type is the type of a token.
type Type string

// Token represents a single significant line of INI source.
type Token struct {
	Type    Type
	Literal string // the line with its comment stripped and surrounding whitespace trimmed
	Line    int    // 1-based line number in the source
}

const (
	EOF Type = "EOF" // End of input

	HEADER Type = "HEADER" // [section]
	NODE   Type = "NODE"   // name = value
)

// Classify reports whether a trimmed, non-empty line opens a section or
// holds a node. Lines that start with '[' are headers; everything else is
// treated as a node and validated later.
func Classify(line string) Type {
	if len(line) > 0 && line[0] == '[' {
		return HEADER
	}
	return NODE
}
