package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/Maksim-Sebelev/Language-sub000/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the standard output configured on kong, or [os.Stdout].
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// overlapping patterns.
type fileKey struct {
	dev uint64
	ino uint64
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: stat.Dev, ino: stat.Ino}, true
}

// expandSources resolves each pattern to the regular files it names, in
// pattern order and sorted within a pattern. Patterns use doublestar syntax
// ("src/**/*.lang"); a pattern without metacharacters must name an existing
// file. "-" is passed through as stdin. Files reached more than once, by
// different patterns or through symlinks, are returned once.
func expandSources(ctx context.Context, patterns []string) ([]string, error) {
	var (
		out  []string
		seen = make(map[fileKey]struct{})
	)

	for _, pattern := range patterns {
		if pattern == stdinSource {
			if !slices.Contains(out, stdinSource) {
				out = append(out, stdinSource)
			}

			continue
		}

		if !doublestar.ValidatePathPattern(pattern) {
			return nil, ErrBadPattern.With(slog.String("pattern", pattern))
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, ErrBadPattern.With(slog.String("pattern", pattern)).Wrap(err)
		}

		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, ErrOpenSource.With(slog.String("source", pattern)).Wrap(err)
			}

			matches = []string{pattern}
		}

		slices.Sort(matches)

		for _, path := range matches {
			if unique(path, seen) {
				out = append(out, path)
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrNoSources
	}

	log.DebugContext(ctx, "sources expanded",
		slog.Int("patterns", len(patterns)),
		slog.Int("files", len(out)),
	)

	return out, nil
}

// unique reports whether path has not been seen before and records it.
// Paths that cannot be resolved are treated as unique and fail later, when
// they are opened.
func unique(path string, seen map[fileKey]struct{}) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return true
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return true
	}

	key, ok := makeFileKey(info)
	if !ok {
		return true
	}

	if _, exists := seen[key]; exists {
		return false
	}

	seen[key] = struct{}{}

	return true
}

// readSource reads a source file, or stdin for "-".
func readSource(path string) ([]byte, error) {
	if path == stdinSource {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// displayName returns the file name used in diagnostics.
func displayName(path string) string {
	if path == stdinSource {
		return "<stdin>"
	}

	return path
}
