package lang

import (
	"github.com/Maksim-Sebelev/Language-sub000/lang/parser"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// DefaultMaxDepth is the default limit on block and expression nesting.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = parser.DefaultMaxDepth

// Option configures parsing and loading of a [Unit].
type Option func(*Unit)

// WithFile sets the file name reported in diagnostics.
func WithFile(name string) Option {
	return func(u *Unit) {
		u.File = name
	}
}

// WithMaxDepth sets the nesting limit of the grammar engine.
func WithMaxDepth(depth int) Option {
	return func(u *Unit) {
		u.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(u *Unit) {
		u.logger = logger
	}
}

// applyDefaults sets default option values on a unit.
func applyDefaults(u *Unit) {
	u.maxDepth = DefaultMaxDepth
}

// applyOptions applies functional options to a unit.
func applyOptions(u *Unit, opts ...Option) {
	for _, opt := range opts {
		opt(u)
	}
}
