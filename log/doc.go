// Package log is the structured logger of the compiler, a thin layer over
// [log/slog].
//
// A [Logger] is built once with functional options and never mutated, so it
// can be shared freely between goroutines compiling different units:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("ms"))
//
//	logger.Info("compiled", log.File("fact.lang"), slog.Int("items", 4))
//
// [Logger.With] scopes a logger to a file or stage, and [Logger.Wrap] derives
// one with different settings.
//
// # Levels
//
// Besides the four slog levels there is [LevelTrace], below debug. The
// parser reports every production it enters at trace level.
//
// # Attributes
//
// [File], [Pos], [Stage] and [Since] build the attributes shared by the
// lexer, parser, AST text reader and command line, so records from every
// stage use the same keys.
//
// # Output
//
// Records are encoded as [FormatText] (the default) or [FormatJSON]. With
// [WithPretty], both are rendered with lipgloss styles that fall back to plain
// text when the output is not a terminal. Timestamps follow
// [WithTimeLayout]; the layout "none" drops them.
//
// # Default logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger on standard error, reconfigured with [Config].
package log
