package repl

import "testing"

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		cursor     int
		wantName   string
		wantIndex  int
		wantInCall bool
	}{
		{"no call", "value", 5, "", 0, false},
		{"open paren", "add(", 4, "add", 0, true},
		{"first arg", "add(1", 5, "add", 0, true},
		{"second arg", "add(1,", 6, "add", 1, true},
		{"second arg with value", "add(1, 2", 8, "add", 1, true},
		{"nested call done", "add(mul(2, 3),", 14, "add", 1, true},
		{"cursor inside nested call", "add(mul(2, 3), 4)", 8, "mul", 0, true},
		{"grouping paren", "x = (1 + ", 9, "", 0, false},
		{"closed call", "add(1, 2)", 9, "", 0, false},
		{"call keyword", "call f(a, b, ", 13, "f", 2, true},
		{"statement context", "int x = add(1", 13, "add", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)

			if got.inCall != tt.wantInCall {
				t.Fatalf("inCall = %v, want %v", got.inCall, tt.wantInCall)
			}

			if got.name != tt.wantName || got.argIndex != tt.wantIndex {
				t.Errorf("detectFunctionCall(%q, %d) = (%q, %d), want (%q, %d)",
					tt.input, tt.cursor, got.name, got.argIndex,
					tt.wantName, tt.wantIndex)
			}
		})
	}
}

func TestRenderSignatureHint_PlainText(t *testing.T) {
	f := function{ret: "int", name: "add", params: []string{"int a", "int b"}}

	got := renderSignatureHint(f, 1)
	if got != "int add(int a, int b)" {
		t.Errorf("renderSignatureHint() = %q", got)
	}

	if got := f.String(); got != "int add(int a, int b)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRenderSignatureHint_NoParams(t *testing.T) {
	f := function{ret: "void", name: "tick"}

	if got := renderSignatureHint(f, 0); got != "void tick()" {
		t.Errorf("renderSignatureHint() = %q", got)
	}
}
