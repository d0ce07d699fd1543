package logger

import "testing"

func TestNew_ReturnsNoopLogger(t *testing.T) {
	l := New()
	if l.Log == nil {
		t.Fatal("expected a non-nil logger before Init")
	}
	// Safe to log before Init.
	l.Log.Info("noop")
}

func TestInit(t *testing.T) {
	cases := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"info level", "Info", false},
		{"debug level", "Debug", false},
		{"unknown level", "verbose", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			err := l.Init(tc.level)
			if tc.wantErr && err == nil {
				t.Errorf("Init(%q) expected error, got nil", tc.level)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Init(%q) unexpected error: %v", tc.level, err)
			}
		})
	}
}
