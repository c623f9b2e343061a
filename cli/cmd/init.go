package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/Maksim-Sebelev/Language-sub000/log"
	"github.com/Maksim-Sebelev/Language-sub000/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file with current flag values.
type Init struct {
	Force  bool   `help:"Overwrite existing configuration file" short:"f"`
	Format string `default:"yaml" enum:"json,yaml,toml" help:"Configuration file format (${enum})."`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	base, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	confPath := base + "." + i.Format

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := i.encode(ctx, flagValues(ktx))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// encode renders values in the selected format.
func (i *Init) encode(ctx context.Context, values map[string]any) ([]byte, error) {
	switch i.Format {
	case "json":
		data, err := json.MarshalIndent(values, "", strings.Repeat(" ", defaultConfigIndent))

		return append(data, '\n'), err

	case "yaml":
		return yaml.MarshalContext(ctx, values, yaml.Indent(defaultConfigIndent))

	case "toml":
		var buf bytes.Buffer

		err := toml.NewEncoder(&buf).Encode(values)

		return buf.Bytes(), err

	default:
		return nil, ErrInvalidFormat.With(slog.String("format", i.Format))
	}
}

// flagValues returns the set, non-empty values of all configurable flags
// keyed by flag name. Help and profiling flags are skipped.
func flagValues(ktx *kong.Context) map[string]any {
	values := make(map[string]any)

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
		case string:
			if v != "" {
				values[flag.Name] = v
			}
		case []string:
			if len(v) > 0 {
				values[flag.Name] = v
			}
		case bool, int, int64, float64:
			values[flag.Name] = v
		default:
			if s, ok := v.(interface{ String() string }); ok {
				values[flag.Name] = s.String()
			} else if b, ok := v.(interface{ MarshalText() ([]byte, error) }); ok {
				if text, err := b.MarshalText(); err == nil {
					values[flag.Name] = string(text)
				}
			}
		}
	}

	return values
}
