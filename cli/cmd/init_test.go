package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initContext parses args against a small flag set and returns a context for
// Init.Run along with the configuration base path.
func initContext(t *testing.T, args ...string) (*kong.Context, string) {
	t.Helper()

	base := filepath.Join(t.TempDir(), "config")

	var cli struct {
		Level string `default:"warn"`
		Jobs  int    `default:"0"`
		Color bool
	}

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: base})
	require.NoError(t, err)

	ktx, err := parser.Parse(args)
	require.NoError(t, err)

	return ktx, base
}

func TestInit_Formats(t *testing.T) {
	decoders := map[string]func([]byte, any) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			ktx, base := initContext(t, "--level=debug", "--jobs=4", "--color")

			require.NoError(t, (&Init{Format: format}).Run(WithContext(t.Context(), ktx)))

			data, err := os.ReadFile(base + "." + format)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, decode(data, &got))

			assert.Equal(t, "debug", got["level"])
			assert.EqualValues(t, 4, got["jobs"])
			assert.Equal(t, true, got["color"])
			assert.NotContains(t, got, "help")
		})
	}
}

func TestInit_Force(t *testing.T) {
	ktx, base := initContext(t)
	ctx := WithContext(t.Context(), ktx)
	path := base + ".yaml"

	require.NoError(t, os.WriteFile(path, []byte("existing: true\n"), 0o600))

	err := (&Init{Format: "yaml"}).Run(ctx)
	require.ErrorIs(t, err, ErrWriteConfig)
	require.ErrorIs(t, err, ErrFileExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(data))

	require.NoError(t, (&Init{Format: "yaml", Force: true}).Run(ctx))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: warn")
}
