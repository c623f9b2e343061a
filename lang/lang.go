package lang

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/lang/lexer"
	"github.com/Maksim-Sebelev/Language-sub000/lang/names"
	"github.com/Maksim-Sebelev/Language-sub000/lang/parser"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// Unit is one compilation unit: a source, its tokens and names, and the tree
// built from them. A unit returned by [Load] has no tokens.
type Unit struct {
	File   string
	Source []byte
	Tokens []token.Token
	Names  *names.Table
	Root   *ast.Node

	maxDepth int
	logger   log.Logger // structured logger (zero value is a no-op)
}

// ParseString parses src as a program.
func ParseString(ctx context.Context, src string, opts ...Option) (*Unit, error) {
	return parse(ctx, []byte(src), opts...)
}

// ParseReader reads all of r and parses it as a program.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Unit, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return parse(ctx, src, opts...)
}

func parse(ctx context.Context, src []byte, opts ...Option) (*Unit, error) {
	u := &Unit{Source: src, Names: names.New(0)}

	applyDefaults(u)
	applyOptions(u, opts...)

	start := time.Now()

	u.logger.TraceContext(ctx, "parse start",
		log.File(u.File),
		slog.Int("source_length", len(src)),
	)

	toks, err := lexer.Scan(src, u.Names)
	if err != nil {
		return nil, u.fail(ErrParse, err)
	}

	u.Tokens = toks

	u.logger.TraceContext(ctx, "lexer complete",
		log.Stage("lex"),
		log.Since(start),
		slog.Int("tokens", len(toks)),
		slog.Int("names", u.Names.Len()),
	)

	root, err := parser.Parse(ctx, toks,
		parser.WithMaxDepth(u.maxDepth),
		parser.WithLogger(u.logger),
	)
	if err != nil {
		return nil, u.fail(ErrParse, err)
	}

	u.Root = root

	u.logger.TraceContext(ctx, "parse complete", log.Stage("parse"), log.Since(start))

	return u, nil
}

// fail wraps err under sentinel, naming the unit's file.
func (u *Unit) fail(sentinel *Error, err error) error {
	err = withFile(err, u.File)
	if u.File == "" {
		return sentinel.Wrap(err)
	}

	return sentinel.Wrap(err).With(log.File(u.File))
}

// WriteText writes the canonical AST text of the unit to w.
func (u *Unit) WriteText(w io.Writer) error {
	if err := asttext.Write(w, u.Root); err != nil {
		return u.fail(ErrWrite, err)
	}

	return nil
}

// Compile parses src and writes its canonical AST text to w.
func Compile(ctx context.Context, src io.Reader, w io.Writer, opts ...Option) (*Unit, error) {
	u, err := ParseReader(ctx, src, opts...)
	if err != nil {
		return nil, err
	}

	if err := u.WriteText(w); err != nil {
		return nil, err
	}

	u.logger.DebugContext(ctx, "compiled",
		log.File(u.File),
		slog.Int("items", len(ast.Flatten(u.Root))),
	)

	return u, nil
}

// Load reads canonical AST text from r. The returned unit holds the text as
// its source and a name table filled from the tree.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Unit, error) {
	u := &Unit{Names: names.New(0)}

	applyDefaults(u)
	applyOptions(u, opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	u.Source = data

	root, err := asttext.Unmarshal(data, asttext.WithFile(u.File))
	if err != nil {
		return nil, u.fail(ErrLoad, err)
	}

	u.Root = root

	ast.Walk(root, func(n *ast.Node) bool {
		if n.Is(ast.Name) {
			u.Names.Push(n.Name)
		}

		return true
	})

	u.logger.TraceContext(ctx, "load complete",
		log.File(u.File),
		log.Stage("load"),
		slog.Int("names", u.Names.Len()),
	)

	return u, nil
}

// Stats returns the number of nodes of each kind in the unit's tree.
func (u *Unit) Stats() map[ast.Kind]int {
	return ast.Count(u.Root)
}
