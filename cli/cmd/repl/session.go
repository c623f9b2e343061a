package repl

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/lang/names"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// function is the signature of a function defined in the session.
type function struct {
	ret    string
	name   string
	params []string // "type name"
}

func (f function) String() string {
	return f.ret + " " + f.name + "(" + strings.Join(f.params, ", ") + ")"
}

// session accumulates the top-level items accepted so far. Each input is
// parsed on its own, so a rejected input leaves the session unchanged.
type session struct {
	inputs []string
	items  []*ast.Node
	idents *names.Table
	logger log.Logger
}

func newSession(logger log.Logger) *session {
	return &session{idents: names.New(0), logger: logger}
}

// accept parses input and, on success, appends its items to the session.
// It returns the canonical text of the new items alone.
func (s *session) accept(ctx context.Context, input string) (string, error) {
	u, err := lang.ParseString(ctx, input,
		lang.WithFile("<input>"),
		lang.WithLogger(s.logger),
	)
	if err != nil {
		return "", err
	}

	s.inputs = append(s.inputs, input)
	s.items = append(s.items, ast.Flatten(u.Root)...)
	s.intern(u.Names)

	return body(u.Root)
}

// replace discards the session and seeds it from a whole program.
func (s *session) replace(ctx context.Context, src string) error {
	u, err := lang.ParseString(ctx, src,
		lang.WithFile("<session>"),
		lang.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	s.inputs = []string{strings.TrimRight(src, "\n")}
	s.items = ast.Flatten(u.Root)
	s.idents = names.New(u.Names.Len())
	s.intern(u.Names)

	return nil
}

func (s *session) reset() {
	s.inputs = nil
	s.items = nil
	s.idents = names.New(0)
}

// intern adds the identifiers of one parsed input to the session table.
func (s *session) intern(t *names.Table) {
	for _, name := range t.All() {
		s.idents.Push(name)
	}
}

// source returns every accepted input, one per line.
func (s *session) source() string {
	if len(s.inputs) == 0 {
		return ""
	}

	return strings.Join(s.inputs, "\n") + "\n"
}

func (s *session) root() *ast.Node { return ast.Fold(s.items...) }

// tree returns the canonical text of the whole session without signature.
func (s *session) tree() (string, error) { return body(s.root()) }

// write stores the canonical text of the session, with signature, at path.
func (s *session) write(path string) error {
	if path == "" {
		return ErrNoTarget
	}

	data, err := asttext.Marshal(s.root())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// functions returns the function definitions of the session by name. A later
// definition of the same name wins.
func (s *session) functions() map[string]function {
	fns := make(map[string]function)

	for _, item := range s.items {
		if !item.Is(ast.DefineFunction) {
			continue
		}

		typ := item.Left
		name := typ.Left

		f := function{ret: typ.Type.String(), name: name.Name}

		for p := range ast.Items(name.Left) {
			if p.Is(ast.DefineVariable) && p.Left.Is(ast.Type) && p.Left.Left.Is(ast.Name) {
				f.params = append(f.params, p.Left.Type.String()+" "+p.Left.Left.Name)
			}
		}

		fns[f.name] = f
	}

	return fns
}

// names returns every distinct identifier used in the session, sorted.
func (s *session) names() []string {
	out := make([]string, 0, s.idents.Len())

	for name := range s.idents.Sorted() {
		out = append(out, name)
	}

	return out
}

// body returns the canonical text of root with the signature lines removed.
func body(root *ast.Node) (string, error) {
	data, err := asttext.Marshal(root)
	if err != nil {
		return "", err
	}

	lines := strings.SplitAfter(string(data), "\n")

	return strings.Join(lines[len(asttext.Signature):], ""), nil
}

// render formats err against src the way the command line does.
func render(src string, err error) string {
	var buf bytes.Buffer

	_ = diag.Render(&buf, []byte(src), err)

	return strings.TrimRight(buf.String(), "\n")
}
