package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// logFormat configures the default logger as soon as kong decodes it, so
// that errors reported while parsing the rest of the command line already use
// the requested format.
type logFormat string

func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(text))))

	return nil
}

// logLevel is the level counterpart of [logFormat].
type logLevel string

func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(text))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"warn"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp layout (a time layout, a name such as DateTime or ms, or none)."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies the parsed settings. The returned func logs the end of the
// run.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() { log.TraceContext(ctx, "run complete") }
}

func (f *logConfig) options() []log.Option {
	return []log.Option{
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

// logFlag applies one logging flag found by [logConfig.scan]. Boolean flags
// take their value only from "--flag=value"; the others also consume the
// following argument.
type logFlag struct {
	boolean bool
	apply   func(f *logConfig, value string)
}

var logFlags = map[string]logFlag{
	"level":  {apply: func(f *logConfig, v string) { _ = f.Level.UnmarshalText([]byte(v)) }},
	"format": {apply: func(f *logConfig, v string) { _ = f.Format.UnmarshalText([]byte(v)) }},
	"time-layout": {apply: func(f *logConfig, v string) {
		f.TimeLayout = v
		log.Config(log.WithTimeLayout(v))
	}},
	"caller": {boolean: true, apply: func(f *logConfig, v string) {
		f.Caller = v == "true"
		log.Config(log.WithCaller(f.Caller))
	}},
	"pretty": {boolean: true, apply: func(f *logConfig, v string) {
		f.Pretty = v == "true"
		log.Config(log.WithPretty(f.Pretty))
	}},
}

// scan applies logging flags before kong parses args, wherever they appear
// on the command line. Kong decodes flags in order, so without this pass a
// trailing --log-level would not affect messages about earlier arguments.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		name, negated := strings.CutPrefix(arg, "--no-log-")
		if !negated {
			var ok bool
			if name, ok = strings.CutPrefix(arg, "--log-"); !ok {
				continue
			}
		}

		name, value, assigned := strings.Cut(name, "=")

		flag, ok := logFlags[name]
		if !ok || (negated && !flag.boolean) {
			continue
		}

		if flag.boolean {
			on := true
			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				on = v
			}

			flag.apply(f, strconv.FormatBool(on != negated))

			continue
		}

		if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			value = args[i]
		}

		flag.apply(f, value)
	}
}
