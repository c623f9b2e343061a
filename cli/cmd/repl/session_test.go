package repl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maksim-Sebelev/Language-sub000/lang/asttext"
	"github.com/Maksim-Sebelev/Language-sub000/log"
)

var zeroLogger log.Logger

func TestSession_Accept(t *testing.T) {
	s := newSession(zeroLogger)

	text, err := s.accept(t.Context(), "int x = 1;")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"DEF_VAR",
		"{",
		"\tTYPE: int",
		"\tNAME: x",
		"\tOP: =",
		"\t{",
		"\t\tNUM: int 1",
		"\t}",
		"}",
		"",
	}, "\n"), text)
	assert.Len(t, s.items, 1)
	assert.Equal(t, "int x = 1;\n", s.source())
}

func TestSession_RejectLeavesSessionUnchanged(t *testing.T) {
	s := newSession(zeroLogger)

	_, err := s.accept(t.Context(), "int x = 1;")
	require.NoError(t, err)

	_, err = s.accept(t.Context(), "x = ;")
	require.Error(t, err)

	assert.Len(t, s.items, 1)
	assert.Equal(t, "int x = 1;\n", s.source())

	msg := render("x = ;", err)
	assert.Contains(t, msg, "<input>:1:")
	assert.Contains(t, msg, "x = ;")
}

func TestSession_Functions(t *testing.T) {
	s := newSession(zeroLogger)

	_, err := s.accept(t.Context(), "int add(int a, int b) { return a + b; }")
	require.NoError(t, err)

	_, err = s.accept(t.Context(), "void tick() { }")
	require.NoError(t, err)

	fns := s.functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "int add(int a, int b)", fns["add"].String())
	assert.Equal(t, "void tick()", fns["tick"].String())

	assert.Equal(t, []string{"a", "add", "b", "tick"}, s.names())
}

func TestSession_ReplaceAndWrite(t *testing.T) {
	s := newSession(zeroLogger)

	require.NoError(t, s.replace(t.Context(), "int x = 1;\nx += 2;\n"))
	assert.Len(t, s.items, 2)

	path := filepath.Join(t.TempDir(), "session.ast")
	require.NoError(t, s.write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	root, err := asttext.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, s.root().Kind, root.Kind)

	require.ErrorIs(t, s.write(""), ErrNoTarget)

	s.reset()
	assert.Empty(t, s.source())

	tree, err := s.tree()
	require.NoError(t, err)
	assert.Empty(t, tree)
}
