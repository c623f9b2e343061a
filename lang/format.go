package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Maksim-Sebelev/Language-sub000/lang/token"
)

// ToMap converts the unit's tree to native Go maps and slices.
func (u *Unit) ToMap() map[string]any {
	m := map[string]any{"root": u.Root.ToMap()}

	if u.File != "" {
		m["file"] = u.File
	}

	return m
}

// FormatJSON writes the unit's tree as JSON to the writer.
func (u *Unit) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	return formatJSON(w, u.ToMap(), indent)
}

// FormatYAML writes the unit's tree as YAML to the writer.
func (u *Unit) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	return formatYAML(ctx, w, u.ToMap(), indent)
}

// Tokens is a token stream that formats like a tree.
type Tokens []token.Token

// ToMap converts the token stream to a list of maps.
func (ts Tokens) ToMap() []any {
	out := make([]any, 0, len(ts))

	for _, t := range ts {
		m := map[string]any{
			"kind": t.Kind.String(),
			"text": t.String(),
			"pos":  t.Pos.String(),
		}

		if t.Kind == token.Name {
			m["id"] = t.ID
		}

		out = append(out, m)
	}

	return out
}

// FormatJSON writes the token stream as JSON to the writer.
func (ts Tokens) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	return formatJSON(w, ts.ToMap(), indent)
}

// FormatYAML writes the token stream as YAML to the writer.
func (ts Tokens) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	return formatYAML(ctx, w, ts.ToMap(), indent)
}

func formatJSON(w io.Writer, v any, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

func formatYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}
