package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksim-Sebelev/Language-sub000/lang"
	"github.com/Maksim-Sebelev/Language-sub000/lang/ast"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
)

// compileText returns the canonical AST text of src.
func compileText(t *testing.T, src string) []byte {
	t.Helper()

	var buf bytes.Buffer

	_, err := lang.Compile(t.Context(), strings.NewReader(src), &buf)
	require.NoError(t, err)

	return buf.Bytes()
}

func TestLoad_Stats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fact.ast")
	require.NoError(t, os.WriteFile(path, compileText(t, factSource), 0o644))

	ctx, out := kongTest(t, kong.Vars{})

	l := &Load{Canonical: true, Context: 2, Source: path}
	require.NoError(t, l.Run(ctx))

	got := out.String()
	for _, want := range []string{"kind", "count", "DefineFunction", "While", "total", "names"} {
		assert.Contains(t, got, want)
	}
}

func TestLoad_NotCanonical(t *testing.T) {
	text := compileText(t, "int x = 1;\n")
	loose := bytes.ReplaceAll(text, []byte("\t"), []byte("    "))

	path := filepath.Join(t.TempDir(), "loose.ast")
	require.NoError(t, os.WriteFile(path, loose, 0o644))

	ctx, out := kongTest(t, kong.Vars{})

	// Without --canonical the loose indentation is accepted.
	require.NoError(t, (&Load{Source: path}).Run(ctx))

	out.Reset()

	err := (&Load{Canonical: true, Context: 1, Source: path}).Run(ctx)
	require.ErrorIs(t, err, ErrNotCanonical)
	assert.Contains(t, out.String(), "--- "+path)
	assert.Contains(t, out.String(), "+++ canonical")
	assert.Contains(t, out.String(), "+\tTYPE: int")
}

func TestLoad_BadSignature(t *testing.T) {
	src := "file signature:\nname: something else\n"
	path := filepath.Join(t.TempDir(), "bad.ast")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	ctx, _ := kongTest(t, kong.Vars{})

	err := (&Load{Source: path}).Run(ctx)

	var se *SourceError
	require.ErrorAs(t, err, &se)

	var sig *diag.SignatureError
	require.ErrorAs(t, err, &sig)
	assert.Equal(t, 2, sig.Pos.Line)
}

func TestStatsTable_Order(t *testing.T) {
	got := statsTable(map[ast.Kind]int{
		ast.Name:   3,
		ast.Number: 3,
		ast.Return: 1,
	}, 2)

	name := strings.Index(got, "Name")
	number := strings.Index(got, "Number")
	ret := strings.Index(got, "Return")
	total := strings.Index(got, "total")

	assert.True(t, number < name, "ties are ordered by kind")
	assert.True(t, name < ret, "more frequent kinds first")
	assert.True(t, ret < total)
	assert.Contains(t, got, "7")
}
