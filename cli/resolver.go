package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// configFormat names a configuration file syntax and the loader that reads
// it. JSON uses kong's own loader.
type configFormat struct {
	ext  string
	load kong.ConfigurationLoader
}

// configFormats lists the configuration file syntaxes, in the order kong
// consults them.
var configFormats = []configFormat{
	{".json", kong.JSON},
	{".yaml", loadYAML},
	{".toml", loadTOML},
}

// loadYAML is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Nested mappings are joined with hyphens, so these are equivalent:
//
//	log-level: debug
//
//	log:
//	  level: debug
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, err
	}

	return flatConfig(m), nil
}

// loadTOML is a [kong.ConfigurationLoader] for TOML configuration files.
// Tables are flattened the same way as YAML mappings.
func loadTOML(r io.Reader) (kong.Resolver, error) {
	var m map[string]any

	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}

	return flatConfig(m), nil
}

// config implements [kong.Resolver] over a flat map of flag names.
type config map[string]any

// flatConfig flattens nested maps into hyphen-joined keys.
func flatConfig(m map[string]any) config {
	c := config{}
	c.add("", m)

	return c
}

func (c config) add(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.add(key, sub)

			continue
		}

		c[key] = scalar(v)
	}
}

// scalar converts decoded numbers to strings, which kong parses with the
// flag's own mapper.
func scalar(v any) any {
	switch v := v.(type) {
	case int, int64, uint64, float64:
		return fmt.Sprint(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver]. A key scoped by the command that owns
// the flag ("compile-jobs") takes precedence over the bare flag name.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if parent != nil && parent.Command != nil {
		if value, ok := c[parent.Command.Name+"-"+flag.Name]; ok {
			return value, nil
		}
	}

	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
