package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// formatter is implemented by values that dump as JSON or YAML.
type formatter interface {
	FormatJSON(ctx context.Context, w io.Writer, indent int) error
	FormatYAML(ctx context.Context, w io.Writer, indent int) error
}

// dumpFlags are shared by the tree and tokens commands.
type dumpFlags struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format (${enum})."    short:"f"`
	Indent int    `default:"2"                     help:"Indent width (0: compact)." short:"i"`

	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// parse reads and parses the source named by the flags.
func (d *dumpFlags) parse(ctx context.Context) (*lang.Unit, error) {
	src, err := readSource(d.Source)
	if err != nil {
		return nil, ErrOpenSource.With(slog.String("source", d.Source)).Wrap(err)
	}

	u, err := lang.ParseString(ctx, string(src),
		lang.WithFile(displayName(d.Source)),
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, withSource(err, src)
	}

	return u, nil
}

func (d *dumpFlags) write(ctx context.Context, f formatter) error {
	var err error

	switch d.Format {
	case "json":
		err = f.FormatJSON(ctx, stdout(ctx), d.Indent)
	case "yaml":
		err = f.FormatYAML(ctx, stdout(ctx), d.Indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", d.Format))
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("format", d.Format)).Wrap(err)
	}

	return nil
}

// Tree parses a source file and dumps its abstract syntax tree.
type Tree struct {
	Dump dumpFlags `embed:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	u, err := t.Dump.parse(ctx)
	if err != nil {
		return err
	}

	return t.Dump.write(ctx, u)
}

// Tokens scans and parses a source file and dumps its token stream.
type Tokens struct {
	Dump dumpFlags `embed:""`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	u, err := t.Dump.parse(ctx)
	if err != nil {
		return err
	}

	return t.Dump.write(ctx, lang.Tokens(u.Tokens))
}

// Names lists the identifiers of a source file.
type Names struct {
	Prefix string `help:"Only list names starting with this prefix."`
	ByID   bool   `help:"Order by first appearance instead of by name." name:"by-id"`

	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

// Run executes the names command.
func (n *Names) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	u, err := (&dumpFlags{Source: n.Source}).parse(ctx)
	if err != nil {
		return err
	}

	var b strings.Builder

	if n.ByID {
		for id, name := range u.Names.All() {
			if strings.HasPrefix(name, n.Prefix) {
				fmt.Fprintf(&b, "%d\t%s\n", id, name)
			}
		}
	} else {
		for _, name := range u.Names.Prefixed(n.Prefix) {
			id, _ := u.Names.Lookup(name)
			fmt.Fprintf(&b, "%d\t%s\n", id, name)
		}
	}

	if _, err := io.WriteString(stdout(ctx), b.String()); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
