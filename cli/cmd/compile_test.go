package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/lang/diag"
)

func TestCompile_WritesNextToSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"fact.lang":     factSource,
		"sub/one.lang":  "int one = 1;\n",
		"sub/two.lang":  "int two = one + one;\n",
		"sub/notes.txt": "not a source",
	})

	ctx, out := kongTest(t, kong.Vars{})

	c := &Compile{Jobs: 2, MaxDepth: 64, Sources: []string{filepath.Join(dir, "**/*.lang")}}
	require.NoError(t, c.Run(ctx))
	assert.Empty(t, out.String())

	for _, name := range []string{"fact.ast", "sub/one.ast", "sub/two.ast"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)

		for i, line := range asttext.Signature {
			assert.Equal(t, line, strings.Split(string(data), "\n")[i], name)
		}

		_, err = asttext.Unmarshal(data)
		assert.NoError(t, err, name)
	}

	assert.NoFileExists(t, filepath.Join(dir, "sub/notes.ast"))
}

func TestCompile_OutputDir(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "build")
	writeFiles(t, dir, map[string]string{"prog.src": "int x = 2 ^ 3;\n"})

	ctx, _ := kongTest(t, kong.Vars{})

	c := &Compile{Out: outDir, MaxDepth: 64, Sources: []string{filepath.Join(dir, "prog.src")}}
	require.NoError(t, c.Run(ctx))
	assert.FileExists(t, filepath.Join(outDir, "prog.ast"))
}

func TestCompile_OutputConflicts(t *testing.T) {
	dir := t.TempDir()
	self := "file signature:\nkept as is\n"
	writeFiles(t, dir, map[string]string{
		"a/x.lang": "int a = 1;\n",
		"b/x.lang": "int b = 2;\n",
		"self.ast": self,
	})

	tests := []struct {
		name    string
		out     string
		sources []string
	}{
		{"same base name in output dir", filepath.Join(dir, "build"), []string{filepath.Join(dir, "*/x.lang")}},
		{"source with the output extension", "", []string{filepath.Join(dir, "self.ast")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := kongTest(t, kong.Vars{})

			c := &Compile{Out: tt.out, MaxDepth: 64, Sources: tt.sources}
			require.ErrorIs(t, c.Run(ctx), ErrOutputConflict)
		})
	}

	assert.NoDirExists(t, filepath.Join(dir, "build"))

	data, err := os.ReadFile(filepath.Join(dir, "self.ast"))
	require.NoError(t, err)
	assert.Equal(t, self, string(data))
}

func TestCompile_Stdout(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.lang": "int a = 1;\n",
		"b.lang": "int b = 2;\n",
	})

	ctx, out := kongTest(t, kong.Vars{})

	c := &Compile{Stdout: true, MaxDepth: 64, Sources: []string{filepath.Join(dir, "a.lang")}}
	require.NoError(t, c.Run(ctx))
	assert.True(t, strings.HasPrefix(out.String(), asttext.Signature[0]+"\n"))
	assert.Contains(t, out.String(), "NAME: a\n")
	assert.NoFileExists(t, filepath.Join(dir, "a.ast"))

	c = &Compile{Stdout: true, MaxDepth: 64, Sources: []string{filepath.Join(dir, "*.lang")}}
	assert.ErrorIs(t, c.Run(ctx), ErrStdoutMulti)
}

func TestCompile_SyntaxErrorCarriesSource(t *testing.T) {
	dir := t.TempDir()
	src := "int ok = 1;\nint bad = ;\n"
	writeFiles(t, dir, map[string]string{"bad.lang": src})

	ctx, _ := kongTest(t, kong.Vars{})

	c := &Compile{MaxDepth: 64, Sources: []string{filepath.Join(dir, "bad.lang")}}
	err := c.Run(ctx)

	var se *SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, src, string(se.Source))

	var syntax *diag.SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, 2, syntax.Pos.Line)
	assert.Equal(t, filepath.Join(dir, "bad.lang"), syntax.File)

	assert.NoFileExists(t, filepath.Join(dir, "bad.ast"))
}

func TestCompile_OutputPath(t *testing.T) {
	tests := []struct {
		out, path, want string
	}{
		{"", "src/main.lang", "src/main.ast"},
		{"", "noext", "noext.ast"},
		{"build", "src/main.lang", "build/main.ast"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"->"+tt.want, func(t *testing.T) {
			c := &Compile{Out: tt.out}
			assert.Equal(t, filepath.FromSlash(tt.want), c.outputPath(filepath.FromSlash(tt.path)))
		})
	}
}
