package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Maksim-Sebelev/Language-sub000/cli/cmd/repl"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// Explore starts an interactive session that parses statements as they are
// entered and prints their AST text.
type Explore struct {
	Source string `arg:"" help:"Source file to seed the session with." name:"source" optional:"" type:"existingfile"`
}

// Run executes the explore command.
func (e *Explore) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	var (
		src  []byte
		seed io.Reader
	)

	if e.Source != "" {
		src, err = os.ReadFile(e.Source)
		if err != nil {
			return ErrOpenSource.With(slog.String("source", e.Source)).Wrap(err)
		}

		seed = bytes.NewReader(src)
	}

	return withSource(repl.Run(ctx, seed, cacheDir, log.Default()), src)
}
