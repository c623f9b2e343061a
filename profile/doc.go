// Package profile provides optional runtime profiling for langc.
//
// Profiling is backed by [github.com/pkg/profile] and must be enabled at build
// time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Settings.Start] returns a no-op
// controller, so callers need no conditional code.
//
// # Modes
//
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread and trace.
// Profile files are written to the configured directory and named after the
// mode (cpu.pprof, mem.pprof, ...).
//
// # Usage
//
//	langc --pprof-mode cpu compile 'src/**/*.lang' -o build
//	go tool pprof -http=: ~/.cache/langc/pprof/cpu.pprof
//
// The compile command fans out over many files. Each unit runs under [Do],
// so CPU samples carry a "unit" label naming the source:
//
//	go tool pprof -tagfocus unit=fact.lang cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
