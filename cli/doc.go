// Package cli contains the command line interface for langc.
//
// # Usage
//
//	langc [flags] <command> [args]
//
// compile is the default command, so a bare list of sources compiles them:
//
//	langc src/**/*.lang         # writes src/<name>.ast next to each source
//	langc -o build main.lang    # writes build/main.ast
//	langc -c - < main.lang      # writes AST text to standard output
//
// Other commands:
//
//   - load: read AST text, check it with --canonical, print node counts
//   - tree, tokens: dump the syntax tree or token stream as JSON or YAML
//   - names: list the identifiers of a source
//   - explore: parse statements interactively
//   - init: write a configuration file from the current flag values
//   - version: print the program version
//
// Syntax and signature errors are printed as "file:line:col: message"
// followed by the offending source line and a caret, and exit with status 1.
//
// # Configuration
//
// Flag defaults are read from config.json, config.yaml and config.toml in the
// user configuration directory ([pkg.ConfigDir]). Keys are flag names; nested
// YAML mappings and TOML tables are joined with hyphens, and a key scoped by
// a command name applies to that command only:
//
//	log:
//	  level: debug
//	compile:
//	  jobs: 4
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o langc .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: <cache>/pprof)
package cli
