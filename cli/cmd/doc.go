// Package cmd implements the langc subcommands: compile, load, tree, tokens,
// names, explore, init and version.
//
// Every command reads its input through kong-parsed flags and writes results
// to kong's standard output. Lexical, grammatical and AST-text errors are
// returned wrapped in a [SourceError], which the command-line boundary renders
// with the offending source line before exiting.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the configuration file, without extension.
	ConfigIdentifier = "config"

	// MaxDepthIdentifier is the kong variable identifier containing the
	// default nesting limit of the grammar engine.
	MaxDepthIdentifier = "maxDepth"
)
