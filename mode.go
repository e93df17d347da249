package ini

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-ini/internal/textutil"
)

// Mode is a set of independent options that control how a deserializer
// pre-processes value text before converting it. Flags are combined with
// the | operator or [Mode.With].
type Mode uint8

// ModeNone uses the value text verbatim.
const ModeNone Mode = 0

const (
	// ModeTrim removes surrounding spaces, tabs, carriage returns and line
	// feeds from the value text.
	ModeTrim Mode = 1 << iota
)

var modeNames = []struct {
	flag Mode
	name string
}{
	{ModeTrim, "trim"},
}

// Has reports whether every flag in flags is set in m.
func (m Mode) Has(flags Mode) bool {
	return m&flags == flags
}

// With returns m with flags added.
func (m Mode) With(flags ...Mode) Mode {
	for _, f := range flags {
		m |= f
	}
	return m
}

// Without returns m with flags removed.
func (m Mode) Without(flags ...Mode) Mode {
	for _, f := range flags {
		m &^= f
	}
	return m
}

func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	var names []string
	rest := m
	for _, mn := range modeNames {
		if m.Has(mn.flag) {
			names = append(names, mn.name)
			rest &^= mn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%02X", uint8(rest)))
	}
	return strings.Join(names, "|")
}

// apply pre-processes s according to the flags in m.
func (m Mode) apply(s string) string {
	if m.Has(ModeTrim) {
		s = textutil.Trim(s)
	}
	return s
}
