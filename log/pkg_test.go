package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLogger(t *testing.T) {
	original := defaultLog
	t.Cleanup(func() { defaultLog = original })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatText), WithPretty(false), WithTimeLayout("none"))

	ctx := context.Background()

	tests := []struct {
		level string
		log   func(string, ...slog.Attr)
	}{
		{"TRACE", func(m string, a ...slog.Attr) { TraceContext(ctx, m, a...) }},
		{"DEBUG", Debug},
		{"DEBUG", func(m string, a ...slog.Attr) { DebugContext(ctx, m, a...) }},
		{"INFO", Info},
		{"INFO", func(m string, a ...slog.Attr) { InfoContext(ctx, m, a...) }},
		{"WARN", Warn},
		{"WARN", func(m string, a ...slog.Attr) { WarnContext(ctx, m, a...) }},
		{"ERROR", Error},
		{"ERROR", func(m string, a ...slog.Attr) { ErrorContext(ctx, m, a...) }},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()

			tt.log("package call", Stage("lex"))

			want := "level=" + tt.level + " msg=\"package call\" stage=lex\n"
			if buf.String() != want {
				t.Errorf("got %q, want %q", buf.String(), want)
			}
		})
	}

	buf.Reset()
	With(File("w.lang")).Info("scoped")

	if !strings.Contains(buf.String(), "file=w.lang") {
		t.Errorf("With did not scope the default logger: %q", buf.String())
	}

	if Default().Level() != LevelTrace {
		t.Error("Config did not reach Default")
	}
}
