package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "Quiet", verbose: false, wantDebug: false},
		{name: "Verbose", verbose: true, wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.verbose)
			log.Info("wait rotation started", "container", "waitBox")
			log.Debug("wait container not found", "container", "missingBox")

			out := buf.String()
			if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "container=waitBox") {
				t.Errorf("expected a structured info record, got %q", out)
			}
			if got := strings.Contains(out, "container=missingBox"); got != tt.wantDebug {
				t.Errorf("debug record written = %v, want %v: %q", got, tt.wantDebug, out)
			}
		})
	}
}

func TestNew_Enabled(t *testing.T) {
	ctx := context.Background()
	if !New(true).Enabled(ctx, slog.LevelDebug) {
		t.Error("verbose logger should enable debug")
	}
	if New(false).Enabled(ctx, slog.LevelDebug) {
		t.Error("quiet logger should not enable debug")
	}
	if !New(false).Enabled(ctx, slog.LevelInfo) {
		t.Error("quiet logger should enable info")
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected discard logger to be disabled")
	}
}
