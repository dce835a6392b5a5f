package util

import (
	"errors"
	"testing"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "resume_1.json", want: "resume_1.json"},
		{key: "nested/./resume_1.json", want: "nested/resume_1.json"},
		{key: " resume_1.json ", want: "resume_1.json"},
		{key: "", wantErr: true},
		{key: "..", wantErr: true},
		{key: "../x", wantErr: true},
		{key: "a/../../x", wantErr: true},
		{key: "/abs", wantErr: true},
		{key: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		got, err := CleanKey(tt.key)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("CleanKey(%q) expected ErrInvalidKey, got %v", tt.key, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CleanKey(%q) unexpected error: %v", tt.key, err)
		}
		if got != tt.want {
			t.Fatalf("CleanKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIsPlainName(t *testing.T) {
	for _, ok := range []string{"resume_20260101_120000_abcdef012345", "resume_x"} {
		if !IsPlainName(ok) {
			t.Fatalf("expected %q to be accepted", ok)
		}
	}
	for _, bad := range []string{"", "..", "a/b", `a\b`, "x..y"} {
		if IsPlainName(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}
