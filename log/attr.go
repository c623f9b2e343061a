package log

import (
	"log/slog"
	"time"
)

// Attribute keys shared by the compiler stages.
const (
	KeyFile    = "file"
	KeyPos     = "pos"
	KeyStage   = "stage"
	KeyElapsed = "elapsed"
)

// File names the source or AST text file a record concerns.
func File(name string) slog.Attr {
	if name == "" {
		name = "<stdin>"
	}

	return slog.String(KeyFile, name)
}

// Pos records a 1-based line and column as a "pos" group.
func Pos(line, col int) slog.Attr {
	return slog.Group(KeyPos, slog.Int("line", line), slog.Int("col", col))
}

// Stage names the pipeline step writing a record, such as "lex" or "parse".
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }

// Since records the time elapsed since start.
func Since(start time.Time) slog.Attr {
	return slog.Duration(KeyElapsed, time.Since(start))
}
