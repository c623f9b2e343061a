package profile

import (
	"context"
	"testing"
)

func TestSettings_StartWithoutMode(t *testing.T) {
	s := Settings{Dir: t.TempDir(), Quiet: true}

	stop := s.Start()
	if _, ok := stop.(nop); !ok {
		t.Fatalf("Start() = %T, want a no-op", stop)
	}

	stop.Stop()
}

func TestSettings_Enabled(t *testing.T) {
	if (Settings{}).Enabled() {
		t.Error("empty mode reported enabled")
	}

	if (Settings{Mode: "sundial"}).Enabled() {
		t.Error("unknown mode reported enabled")
	}

	for _, m := range Modes() {
		if !(Settings{Mode: m}).Enabled() {
			t.Errorf("mode %q not enabled", m)
		}
	}
}

func TestDo_LabelsUnit(t *testing.T) {
	var (
		got string
		ok  bool
	)

	Do(context.Background(), "fact.lang", func(ctx context.Context) {
		got, ok = Unit(ctx)
	})

	if !ok || got != "fact.lang" {
		t.Errorf("Unit() = %q, %v", got, ok)
	}

	if _, ok := Unit(context.Background()); ok {
		t.Error("unlabeled context has a unit")
	}
}
