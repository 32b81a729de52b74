package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/ports"
)

func TestBuildAssemblesGraph(t *testing.T) {
	t.Setenv("KIOSK_STORE_URL", "http://store.test:8080")
	t.Setenv("KIOSK_NAV_HISTORY_LIMIT", "5")

	services, err := Build(nopSink{}, func(string, any) {})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if services.Session == nil || services.Emergency == nil || services.Activity == nil {
		t.Fatalf("incomplete playback graph: %+v", services)
	}
	if services.History == nil || services.Prefs == nil || services.Resolver == nil {
		t.Fatalf("incomplete support graph: %+v", services)
	}
	if services.Store == nil || services.Media == nil {
		t.Fatalf("incomplete store graph: %+v", services)
	}
	if services.Config.Store.BaseURL != "http://store.test:8080" {
		t.Fatalf("unexpected store URL %q", services.Config.Store.BaseURL)
	}

	// The assembled store client must satisfy the port used by the app layer.
	var _ ports.Store = services.Store
}

func TestBuildRejectsBadOverridesFile(t *testing.T) {
	badFile := filepath.Join(t.TempDir(), "links.json")
	if err := os.WriteFile(badFile, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	t.Setenv("KIOSK_FALLBACK_LINKS_FILE", badFile)

	if _, err := Build(nopSink{}, func(string, any) {}); err == nil {
		t.Fatalf("expected error for malformed overrides file")
	}
}

type nopSink struct{}

func (nopSink) PlaybackChanged(domain.PlaybackStatus)  {}
func (nopSink) PlaybackError(domain.ErrorKind, string) {}
func (nopSink) EmergencyChanged(bool)                  {}
func (nopSink) LayoutChanged(domain.BarOffsets)        {}
