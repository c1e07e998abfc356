package config

import (
	"testing"
	"time"
)

const sampleYAML = `
app:
  enabled: true
  workers: 4
  ratio: 0.25
  name: "authgate"
  origins: "http://a.local,http://b.local"
  timeout_seconds: 15
`

func TestViperFromBytes(t *testing.T) {
	// Arrange
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	// Act & Assert
	if !cfg.GetBool("app.enabled") {
		t.Fatal("expected app.enabled to be true")
	}
	if got := cfg.GetInt("app.workers"); got != 4 {
		t.Fatalf("expected 4 workers, got %d", got)
	}
	if got := cfg.GetInt32("app.workers"); got != 4 {
		t.Fatalf("expected 4 workers as int32, got %d", got)
	}
	if got := cfg.GetFloat64("app.ratio"); got != 0.25 {
		t.Fatalf("expected ratio 0.25, got %v", got)
	}
	if got := cfg.GetString("app.name"); got != "authgate" {
		t.Fatalf("expected name authgate, got %q", got)
	}
	if got := cfg.GetArray("app.origins"); len(got) != 2 || got[0] != "http://a.local" {
		t.Fatalf("unexpected origins %v", got)
	}
	if got := cfg.GetSecond("app.timeout_seconds"); got != 15*time.Second {
		t.Fatalf("expected 15s, got %v", got)
	}
}

func TestViperFromBytesRequiresType(t *testing.T) {
	// Act
	_, err := NewViperFromBytes("", []byte(sampleYAML))

	// Assert
	if err == nil {
		t.Fatal("expected an error for a missing config type")
	}
}

func TestViperMissingKeysYieldZeroValues(t *testing.T) {
	// Arrange
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	// Act & Assert
	if cfg.GetBool("missing.key") {
		t.Fatal("expected false for a missing bool")
	}
	if got := cfg.GetString("missing.key"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := cfg.GetSecond("missing.key"); got != 0 {
		t.Fatalf("expected zero duration, got %v", got)
	}
}
