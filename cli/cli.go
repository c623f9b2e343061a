package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/Maksim-Sebelev/Language-sub000/cli/cmd"
	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/pkg"
)

// CLI is the top-level command-line interface for langc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Compile cmd.Compile `cmd:"" default:"withargs" help:"Compile source files to AST text"`
	Load    cmd.Load    `cmd:""                    help:"Read AST text and summarize it"`
	Tree    cmd.Tree    `cmd:""                    help:"Print the syntax tree of a source file"`
	Tokens  cmd.Tokens  `cmd:""                    help:"Print the token stream of a source file"`
	Names   cmd.Names   `cmd:""                    help:"Print the name table of a source file"`
	Explore cmd.Explore `cmd:""                    help:"Parse statements interactively"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Version cmd.Version `cmd:""                    help:"Print version"`
}

// Run executes the langc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
//
// Errors that carry a source position are rendered to standard error with an
// excerpt of the offending line, followed by a call to exit(1).
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier:   configFilePath,
		cmd.CacheIdentifier:    pkg.CacheDir(),
		cmd.MaxDepthIdentifier: strconv.Itoa(lang.DefaultMaxDepth),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position, including boolean flags like --log-pretty.
	cli.Log.scan(args)

	options := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		vars,
	}

	for _, f := range configFormats {
		options = append(options, kong.Configuration(f.load, configFilePath+f.ext))
	}

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	err = ktx.Run(ctx, &cli)

	var se *cmd.SourceError
	if errors.As(err, &se) {
		diag.Fatal(parser.Stderr, exit, se.Source, se.Err)

		return nil
	}

	return err
}
