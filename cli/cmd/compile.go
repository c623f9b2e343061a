package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/log"
	"github.com/Maksim-Sebelev/Language-sub000/profile"
)

// astExt is the file extension of canonical AST text files.
const astExt = ".ast"

// Compile parses source files and writes their canonical AST text.
type Compile struct {
	Out      string `help:"Output directory (default: next to each source)." placeholder:"DIR" short:"o" type:"path"`
	Stdout   bool   `help:"Write AST text to standard output (single source only)." short:"c"`
	Jobs     int    `default:"0"           help:"Maximum units compiled at once (0: number of CPUs)." short:"j"`
	MaxDepth int    `default:"${maxDepth}" help:"Maximum block and expression nesting."`

	Sources []string `arg:"" help:"Source files, doublestar patterns, or '-' for stdin." name:"source"`
}

// Run executes the compile command.
func (c *Compile) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	paths, err := expandSources(ctx, c.Sources)
	if err != nil {
		return err
	}

	toStdout := c.Stdout || (len(paths) == 1 && paths[0] == stdinSource)
	if toStdout && len(paths) != 1 {
		return ErrStdoutMulti.With(slog.Int("sources", len(paths)))
	}

	outs := make([]string, len(paths))
	if !toStdout {
		if outs, err = c.outputPaths(paths); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs())

	for i, path := range paths {
		g.Go(func() (err error) {
			profile.Do(gctx, displayName(path), func(ctx context.Context) {
				err = c.unit(ctx, path, outs[i])
			})

			return err
		})
	}

	return g.Wait()
}

func (c *Compile) jobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}

	return runtime.GOMAXPROCS(0)
}

// unit compiles one source into out, or to standard output when out is
// empty. The AST text is buffered and written only when the whole unit
// succeeded, so a failed unit leaves no partial output.
func (c *Compile) unit(ctx context.Context, path, out string) error {
	src, err := readSource(path)
	if err != nil {
		return ErrOpenSource.With(slog.String("source", path)).Wrap(err)
	}

	var buf bytes.Buffer

	u, err := lang.Compile(ctx, bytes.NewReader(src), &buf,
		lang.WithFile(displayName(path)),
		lang.WithMaxDepth(c.MaxDepth),
		lang.WithLogger(log.With(log.File(displayName(path)))),
	)
	if err != nil {
		return withSource(err, src)
	}

	if out == "" {
		if _, err := buf.WriteTo(stdout(ctx)); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return ErrWriteOutput.With(slog.String("file", out)).Wrap(err)
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return ErrWriteOutput.With(slog.String("file", out)).Wrap(err)
	}

	log.DebugContext(ctx, "compiled",
		log.File(path),
		slog.String("output", out),
		slog.Int("names", u.Names.Len()),
	)

	return nil
}

// outputPath replaces the extension of path with [astExt] and, when an
// output directory is set, moves the file there.
func (c *Compile) outputPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + astExt
	if c.Out == "" {
		return filepath.Join(filepath.Dir(path), base)
	}

	return filepath.Join(c.Out, base)
}

// outputPaths maps each source to its output file. It fails when two
// sources share an output or an output would replace its own source.
func (c *Compile) outputPaths(paths []string) ([]string, error) {
	outs := make([]string, len(paths))
	owner := make(map[string]string, len(paths))

	for i, path := range paths {
		out := c.outputPath(path)
		key := absPath(out)

		if key == absPath(path) {
			return nil, ErrOutputConflict.With(
				slog.String("source", path),
				slog.String("output", out),
			)
		}

		if prev, ok := owner[key]; ok {
			return nil, ErrOutputConflict.With(
				slog.String("source", path),
				slog.String("other", prev),
				slog.String("output", out),
			)
		}

		owner[key] = path
		outs[i] = out
	}

	return outs, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return filepath.Clean(path)
}
