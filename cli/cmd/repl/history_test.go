package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AddLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	require.NoError(t, h.Load())
	assert.Equal(t, 0, h.Len())

	require.NoError(t, h.Add("int x = 1;", modeStmt))
	require.NoError(t, h.Add("tree", modeCtrl))
	require.NoError(t, h.Add("tree", modeCtrl)) // repeated last entry
	require.NoError(t, h.Add("  ", modeStmt))   // blank
	assert.Equal(t, 2, h.Len())

	reloaded := NewHistory(path)
	require.NoError(t, reloaded.Load())
	require.Equal(t, 2, reloaded.Len())

	e, err := reloaded.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, HistoryEntry{Line: "tree", Mode: modeCtrl}, e)

	_, err = reloaded.Entry(2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestHistory_ResubmitMovesToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	require.NoError(t, h.Add("a;", modeStmt))
	require.NoError(t, h.Add("b;", modeStmt))
	require.NoError(t, h.Add("a;", modeStmt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S:b;\nS:a;\n", string(data))
}

func TestHistory_MemoryOnly(t *testing.T) {
	h := NewHistory("")
	require.NoError(t, h.Load())
	require.NoError(t, h.Add("quit", modeCtrl))
	assert.Equal(t, 1, h.Len())
}
