package rotator

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Snider/rswait/pkg/quotes"
)

func TestNew_BrokenCatalog(t *testing.T) {
	orig := defaultCatalog
	defaultCatalog = func() (*quotes.Catalog, error) {
		return nil, errors.New("failed to read quotes.json: corrupt")
	}
	t.Cleanup(func() { defaultCatalog = orig })

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(nil, WithLogger(log))

	if !strings.Contains(logs.String(), "embedded catalog unavailable") {
		t.Errorf("expected a debug diagnostic, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), "corrupt") {
		t.Errorf("diagnostic lost the cause: %q", logs.String())
	}
	if r.Start("waitBox", "") {
		t.Error("Start with a nil host should report false")
	}
	if len(r.Pool()) != 0 {
		t.Errorf("expected an empty pool, got %v", r.Pool())
	}
}
