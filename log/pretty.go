package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty handlers. Styles come from a
// renderer bound to the output, so color is dropped when the output is not a
// terminal.
type palette struct {
	key, str, num, on, off, dur, time lipgloss.Style
	levels                            map[Level]lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		on:   fg("2"),
		off:  fg("1"),
		dur:  fg("5"),
		time: fg("4"),
		levels: map[Level]lipgloss.Style{
			LevelTrace: fg("8"),
			LevelDebug: fg("4"),
			LevelInfo:  fg("2"),
			LevelWarn:  fg("3").Bold(true),
			LevelError: fg("1").Bold(true),
		},
	}
}

// level renders a level with the style of the nearest defined level below
// it.
func (p palette) level(l slog.Level) string {
	lv := Level(l)

	style := p.levels[LevelTrace]

	for _, k := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if lv >= k {
			style = p.levels[k]
		}
	}

	return style.Render(lv.String())
}

// value renders a resolved scalar value.
func (p palette) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())

	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return p.on.Render("true")
		}

		return p.off.Render("false")

	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())

	case slog.KindTime:
		return p.time.Render(v.Time().String())

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			return p.level(level)
		}

		if v.Any() == nil {
			return p.key.Render("null")
		}

		return p.str.Render(fmt.Sprint(v.Any()))

	default:
		return p.str.Render(v.String())
	}
}

// field is one flattened attribute: groups are joined into a dotted key.
type field struct {
	key string
	val slog.Value
}

// flatten resolves a and appends its leaves to out under prefix.
func flatten(out []field, prefix []string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Key == "" {
			return out
		}

		return append(out, field{
			key: strings.Join(append(prefix[:len(prefix):len(prefix)], a.Key), "."),
			val: a.Value,
		})
	}

	if a.Key != "" {
		prefix = append(prefix[:len(prefix):len(prefix)], a.Key)
	}

	for _, sub := range a.Value.Group() {
		out = flatten(out, prefix, sub)
	}

	return out
}

// prettyBase is shared by both pretty handlers: it tracks options, groups and
// attributes added with WithAttrs, and serializes writes.
type prettyBase struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	groups []string
	preset []field
}

func newPrettyBase(w io.Writer, opts *slog.HandlerOptions) prettyBase {
	return prettyBase{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  newPalette(w),
	}
}

func (b prettyBase) enabled(level slog.Level) bool {
	lo := slog.LevelInfo
	if b.opts.Level != nil {
		lo = b.opts.Level.Level()
	}

	return level >= lo
}

// header returns the time, level, source and message fields of r.
func (b prettyBase) header(r slog.Record) []field {
	var out []field

	if !r.Time.IsZero() {
		t := slog.Time(slog.TimeKey, r.Time)
		if b.opts.ReplaceAttr != nil {
			t = b.opts.ReplaceAttr(nil, t)
		}

		if t.Key != "" {
			out = append(out, field{key: t.Key, val: t.Value})
		}
	}

	out = append(out, field{key: slog.LevelKey, val: slog.AnyValue(r.Level)})

	if b.opts.AddSource {
		if src := r.Source(); src != nil {
			out = append(out, field{
				key: slog.SourceKey,
				val: slog.StringValue(fmt.Sprintf("%s:%d", src.File, src.Line)),
			})
		}
	}

	return append(out, field{key: slog.MessageKey, val: slog.StringValue(r.Message)})
}

// fields returns every field of r in output order.
func (b prettyBase) fields(r slog.Record) []field {
	out := append(b.header(r), b.preset...)

	r.Attrs(func(a slog.Attr) bool {
		out = flatten(out, b.groups, a)

		return true
	})

	return out
}

func (b prettyBase) write(buf *bytes.Buffer) error {
	buf.WriteByte('\n')

	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.w.Write(buf.Bytes())

	return err
}

func (b prettyBase) withAttrs(attrs []slog.Attr) prettyBase {
	preset := slices.Clip(b.preset)
	for _, a := range attrs {
		preset = flatten(preset, b.groups, a)
	}

	b.preset = preset

	return b
}

func (b prettyBase) withGroup(name string) prettyBase {
	if name != "" {
		b.groups = append(b.groups[:len(b.groups):len(b.groups)], name)
	}

	return b
}

// prettyTextHandler writes one colorized key=value line per record.
type prettyTextHandler struct{ prettyBase }

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{newPrettyBase(w, opts)}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for i, f := range h.fields(r) {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.pal.key.Render(f.key))
		buf.WriteByte('=')
		buf.WriteString(h.pal.value(f.val))
	}

	return h.write(buf)
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{h.withAttrs(attrs)}
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	return &prettyTextHandler{h.withGroup(name)}
}

// prettyJSONHandler writes one colorized, indented object per record.
type prettyJSONHandler struct{ prettyBase }

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{newPrettyBase(w, opts)}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.enabled(level)
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	for i, f := range h.fields(r) {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(h.pal.key.Render(f.key))
		buf.WriteString(": ")
		buf.WriteString(h.pal.value(f.val))
	}

	buf.WriteString("\n}")

	return h.write(buf)
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{h.withAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{h.withGroup(name)}
}
