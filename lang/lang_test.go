package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

const source = `int sq(int v) {
    return v * v;
}
int y = sq(4) + 1;
if (y > 10) { y = 10; }
`

func TestParseString(t *testing.T) {
	u, err := ParseString(context.Background(), source, WithFile("sq.lang"))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if u.File != "sq.lang" || string(u.Source) != source {
		t.Errorf("unit file/source not recorded: %q", u.File)
	}

	if items := ast.Flatten(u.Root); len(items) != 3 {
		t.Fatalf("got %d top-level items, want 3", len(items))
	}

	if last := u.Tokens[len(u.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("last token = %v, want EOF", last.Kind)
	}

	for _, name := range []string{"sq", "v", "y"} {
		if _, ok := u.Names.Lookup(name); !ok {
			t.Errorf("name %q not interned", name)
		}
	}

	if u.Names.Len() != 3 {
		t.Errorf("name table has %d entries, want 3", u.Names.Len())
	}
}

func TestParseString_Empty(t *testing.T) {
	u, err := ParseString(context.Background(), "  // nothing\n")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if u.Root != nil {
		t.Errorf("empty program root = %v, want nil", u.Root)
	}

	var buf bytes.Buffer
	if err := u.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	if want := strings.Join(asttext.Signature[:], "\n") + "\n"; buf.String() != want {
		t.Errorf("empty program text = %q, want signature only", buf.String())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"lexical", "int x = 1;\nx = 2 @ 3;", 2},
		{"grammatical", "int x = 1;\n\nx = ;", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseString(context.Background(), tt.src, WithFile("bad.lang"))
			if u != nil {
				t.Error("unit returned with error")
			}

			if !errors.Is(err, ErrParse) {
				t.Errorf("error = %v, want ErrParse", err)
			}

			var se *diag.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *diag.SyntaxError", err)
			}

			if se.File != "bad.lang" || se.Pos.Line != tt.line {
				t.Errorf("diagnostic at %s:%d, want bad.lang:%d", se.File, se.Pos.Line, tt.line)
			}

			if !strings.Contains(err.Error(), fmt.Sprintf("bad.lang:%d:", tt.line)) {
				t.Errorf("message %q does not name the location", err.Error())
			}
		})
	}
}

func TestWithMaxDepth(t *testing.T) {
	src := "x = " + strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10) + ";"

	if _, err := ParseString(context.Background(), src, WithMaxDepth(5)); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want nesting failure", err)
	}

	if _, err := ParseString(context.Background(), src); err != nil {
		t.Errorf("default depth: %v", err)
	}
}

func TestCompileAndLoad(t *testing.T) {
	ctx := context.Background()

	var text bytes.Buffer

	compiled, err := Compile(ctx, strings.NewReader(source), &text)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	loaded, err := Load(ctx, bytes.NewReader(text.Bytes()), WithFile("sq.ast"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !ast.Equal(compiled.Root, loaded.Root) {
		t.Errorf("loaded tree differs:\n%s", ast.Diff(compiled.Root, loaded.Root))
	}

	if loaded.Tokens != nil {
		t.Error("loaded unit has tokens")
	}

	if loaded.Names.Len() != compiled.Names.Len() {
		t.Errorf("loaded %d names, compiled %d", loaded.Names.Len(), compiled.Names.Len())
	}

	if !bytes.Equal(loaded.Source, text.Bytes()) {
		t.Error("loaded unit does not keep its text")
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), strings.NewReader("not an ast\n"), WithFile("x.ast"))

	if !errors.Is(err, ErrLoad) {
		t.Errorf("error = %v, want ErrLoad", err)
	}

	var sig *diag.SignatureError
	if !errors.As(err, &sig) || sig.File != "x.ast" || sig.Word != "not an ast" {
		t.Errorf("error = %v, want signature error in x.ast", err)
	}

	body := strings.Join(asttext.Signature[:], "\n") + "\nRET\n{\n"

	_, err = Load(context.Background(), strings.NewReader(body))

	var se *diag.SyntaxError
	if !errors.As(err, &se) {
		t.Errorf("error = %v, want *diag.SyntaxError", err)
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadErrors(t *testing.T) {
	if _, err := ParseReader(context.Background(), failReader{}); !errors.Is(err, ErrReadInput) {
		t.Errorf("ParseReader error = %v, want ErrReadInput", err)
	}

	if _, err := Load(context.Background(), failReader{}); !errors.Is(err, ErrReadInput) {
		t.Errorf("Load error = %v, want ErrReadInput", err)
	}
}

func TestStats(t *testing.T) {
	u, err := ParseString(context.Background(), "int a = 1; a += 2; a++;")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	stats := u.Stats()

	want := map[ast.Kind]int{
		ast.Sequence:       2,
		ast.DefineVariable: 1,
		ast.AssignVariable: 2,
		ast.Type:           1,
		ast.Name:           3,
		ast.Operator:       3,
		ast.Number:         2,
	}

	for k, n := range want {
		if stats[k] != n {
			t.Errorf("Stats[%s] = %d, want %d", k, stats[k], n)
		}
	}
}

func TestFormat(t *testing.T) {
	ctx := context.Background()

	u, err := ParseString(ctx, "x = 1;", WithFile("f.lang"))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	var js bytes.Buffer
	if err := u.FormatJSON(ctx, &js, 2); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var tree struct {
		File string `json:"file"`
		Root struct {
			Kind  string           `json:"kind"`
			Items []map[string]any `json:"items"`
		} `json:"root"`
	}

	if err := json.Unmarshal(js.Bytes(), &tree); err != nil {
		t.Fatalf("json: %v\n%s", err, js.String())
	}

	if tree.File != "f.lang" || tree.Root.Kind != "Sequence" || len(tree.Root.Items) != 1 {
		t.Errorf("unexpected JSON:\n%s", js.String())
	}

	var ym bytes.Buffer
	if err := Tokens(u.Tokens).FormatYAML(ctx, &ym, 2); err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}

	var toks []map[string]any
	if err := yaml.Unmarshal(ym.Bytes(), &toks); err != nil {
		t.Fatalf("yaml: %v\n%s", err, ym.String())
	}

	if len(toks) != 5 || toks[0]["text"] != "x" || toks[4]["kind"] != "end of input" {
		t.Errorf("unexpected YAML:\n%s", ym.String())
	}

	var compact bytes.Buffer
	if err := Tokens(u.Tokens).FormatJSON(ctx, &compact, 0); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	if strings.Count(compact.String(), "\n") != 1 {
		t.Errorf("compact JSON spans lines:\n%s", compact.String())
	}
}

func TestConcurrentUnits(t *testing.T) {
	var g errgroup.Group

	outputs := make([][]byte, 8)

	for i := range outputs {
		g.Go(func() error {
			var buf bytes.Buffer

			src := fmt.Sprintf("int v%d = %d;\n", i, i)
			if _, err := Compile(t.Context(), strings.NewReader(src), &buf); err != nil {
				return err
			}

			outputs[i] = buf.Bytes()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for i, out := range outputs {
		if !bytes.Contains(out, fmt.Appendf(nil, "NAME: v%d\n", i)) {
			t.Errorf("unit %d output mixed up:\n%s", i, out)
		}
	}
}

func TestError(t *testing.T) {
	err := ErrWrite.Wrap(errors.New("short write"))

	if err.Error() != "failed to write AST text: short write" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrWrite) || errors.Is(err, ErrLoad) {
		t.Error("sentinel matching broken")
	}

	if WrapError(err) != err {
		t.Error("WrapError did not return the existing *Error")
	}

	if got := WrapError(errors.New("plain")).Error(); got != "plain" {
		t.Errorf("WrapError(plain) = %q", got)
	}
}
