package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceFile(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "src.lang")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

func TestTree_JSON(t *testing.T) {
	ctx, out := kongTest(t, kong.Vars{})

	path := sourceFile(t, "int x = 1 + 2;\n")

	tree := &Tree{Dump: dumpFlags{Format: "json", Indent: 2, Source: path}}
	require.NoError(t, tree.Run(ctx))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, path, got["file"])
	assert.NotNil(t, got["root"])
}

func TestTokens_YAML(t *testing.T) {
	ctx, out := kongTest(t, kong.Vars{})

	path := sourceFile(t, "x = y;\n")

	tokens := &Tokens{Dump: dumpFlags{Format: "yaml", Indent: 2, Source: path}}
	require.NoError(t, tokens.Run(ctx))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "x", got[0]["text"])
}

func TestDump_InvalidFormat(t *testing.T) {
	ctx, _ := kongTest(t, kong.Vars{})

	tree := &Tree{Dump: dumpFlags{Format: "xml", Source: sourceFile(t, "x;\n")}}
	assert.ErrorIs(t, tree.Run(ctx), ErrInvalidFormat)
}

func TestNames(t *testing.T) {
	path := sourceFile(t, "int beta = 1;\nint alpha = beta;\nint alpine = alpha;\n")

	tests := []struct {
		name  string
		names Names
		want  string
	}{
		{"sorted", Names{Source: path}, "1\talpha\n2\talpine\n0\tbeta\n"},
		{"by id", Names{ByID: true, Source: path}, "0\tbeta\n1\talpha\n2\talpine\n"},
		{"prefix", Names{Prefix: "alp", Source: path}, "1\talpha\n2\talpine\n"},
		{"no match", Names{Prefix: "z", Source: path}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := kongTest(t, kong.Vars{})

			require.NoError(t, tt.names.Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}
