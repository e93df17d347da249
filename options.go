package ini

import (
	"fmt"
	"log/slog"
)

// Option configures parsing, decoding and formatting.
type Option func(*options) error

type options struct {
	logger        *slog.Logger
	mode          Mode
	compact       bool
	caseSensitive bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		logger: slog.New(slog.DiscardHandler),
		mode:   ModeTrim,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger returns an Option that sends debug events about sections and
// nodes to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("ini: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

// WithMode returns an Option that sets the mode used when Unmarshal reads
// node values into string fields. The default is ModeTrim, which reads back
// what Marshal writes; ModeNone keeps values verbatim.
func WithMode(m Mode) Option {
	return func(o *options) error {
		o.mode = m
		return nil
	}
}

// Compact returns an Option that formats nodes as "name=value" instead of
// "name = value".
func Compact() Option {
	return func(o *options) error {
		o.compact = true
		return nil
	}
}

// CaseSensitive returns an Option that makes Unmarshal match section and
// key names exactly. By default names match case-insensitively and '-'
// matches '_'.
func CaseSensitive() Option {
	return func(o *options) error {
		o.caseSensitive = true
		return nil
	}
}
