package profile

// Stopper ends a profiling session and flushes its files.
type Stopper interface{ Stop() }

// Settings select what is profiled and where the files go.
type Settings struct {
	Mode  string // one of [Modes]; empty disables profiling
	Dir   string // output directory; empty uses the working directory
	Quiet bool   // suppress the start and stop messages of pkg/profile
}

// Start begins profiling. It returns a no-op [Stopper] when s.Mode is empty,
// when the mode is unknown, or when the binary was built without the pprof
// tag. Stop is always safe to call once.
func (s Settings) Start() Stopper {
	if s.Mode == "" {
		return nop{}
	}

	return start(s)
}

// Enabled reports whether s names a mode this binary can record.
func (s Settings) Enabled() bool {
	for _, m := range Modes() {
		if m == s.Mode {
			return true
		}
	}

	return false
}

type nop struct{}

func (nop) Stop() {}
