package profile

import (
	"context"
	"runtime/pprof"
)

// LabelUnit is the profiler label naming the compilation unit.
const LabelUnit = "unit"

// Do runs fn with the profiler label [LabelUnit] set to name, so samples in
// CPU and goroutine profiles can be split per source file.
func Do(ctx context.Context, name string, fn func(context.Context)) {
	pprof.Do(ctx, pprof.Labels(LabelUnit, name), fn)
}

// Unit returns the unit label of ctx, if any.
func Unit(ctx context.Context) (string, bool) {
	return pprof.Label(ctx, LabelUnit)
}
