package cmd

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// Load reads canonical AST text and reports what it contains.
type Load struct {
	Canonical bool `help:"Fail with a unified diff unless the input is exactly its canonical form."`
	Context   int  `default:"2" help:"Lines of context in the diff."`

	Source string `arg:"" default:"-" help:"AST text file or '-' for stdin." name:"source"`
}

// Run executes the load command.
func (l *Load) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	data, err := readSource(l.Source)
	if err != nil {
		return ErrOpenSource.With(slog.String("source", l.Source)).Wrap(err)
	}

	u, err := lang.Load(ctx, bytes.NewReader(data),
		lang.WithFile(displayName(l.Source)),
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return withSource(err, data)
	}

	w := stdout(ctx)

	if l.Canonical {
		canon, err := asttext.Marshal(u.Root)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		if !bytes.Equal(canon, data) {
			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(data)),
				B:        difflib.SplitLines(string(canon)),
				FromFile: displayName(l.Source),
				ToFile:   "canonical",
				Context:  l.Context,
			})
			if err != nil {
				return ErrWriteOutput.Wrap(err)
			}

			if _, err := fmt.Fprint(w, diff); err != nil {
				return ErrWriteOutput.Wrap(err)
			}

			return ErrNotCanonical.With(slog.String("source", l.Source))
		}
	}

	if _, err := fmt.Fprintln(w, statsTable(u.Stats(), u.Names.Len())); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// statsTable renders node counts by kind, most frequent first.
func statsTable(counts map[ast.Kind]int, names int) string {
	kinds := slices.SortedFunc(maps.Keys(counts), func(a, b ast.Kind) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	total := 0
	rows := make([][]string, 0, len(kinds)+2)

	for _, k := range kinds {
		total += counts[k]
		rows = append(rows, []string{k.String(), strconv.Itoa(counts[k])})
	}

	rows = append(rows,
		[]string{"total", strconv.Itoa(total)},
		[]string{"names", strconv.Itoa(names)},
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("kind", "count").
		Rows(rows...).
		Render()
}
