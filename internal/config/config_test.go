package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("BLAZOR_BOT_TOKEN", "")
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LogDir != "log" || cfg.TokenFilePath != "bottoken.txt" || cfg.PollTimeout != 60 || cfg.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParse_BadPollTimeout(t *testing.T) {
	t.Setenv("POLL_TIMEOUT", "soon")
	if _, err := Parse(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResolveToken_Order(t *testing.T) {
	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "bottoken.txt")

	cfg := &Config{TokenFilePath: tokenFile}
	if got := cfg.ResolveToken(); got != PlaceholderToken {
		t.Fatalf("want placeholder, got %q", got)
	}

	cfg.BotToken = "env-token"
	if got := cfg.ResolveToken(); got != "env-token" {
		t.Fatalf("want env token, got %q", got)
	}

	if err := os.WriteFile(tokenFile, []byte("  file-token\n"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if got := cfg.ResolveToken(); got != "file-token" {
		t.Fatalf("private file must win, got %q", got)
	}

	if err := os.WriteFile(tokenFile, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	if got := cfg.ResolveToken(); got != "env-token" {
		t.Fatalf("blank token file must fall through, got %q", got)
	}
}

func TestResolveToken_FromEnv(t *testing.T) {
	t.Setenv("BLAZOR_BOT_TOKEN", "1:from-env")
	t.Setenv("BOT_TOKEN_FILE", filepath.Join(t.TempDir(), "none.txt"))
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cfg.ResolveToken(); got != "1:from-env" {
		t.Fatalf("unexpected token %q", got)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"a":1,"b":["x","y"],"c":{"d":true}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, ok := LoadJSON[map[string]any](good)
	if !ok {
		t.Fatalf("expected well-formed file to load")
	}
	want := map[string]any{"a": float64(1), "b": []any{"x", "y"}, "c": map[string]any{"d": true}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected value: %#v", v)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"a":`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if v, ok := LoadJSON[map[string]any](bad); ok || v != nil {
		t.Fatalf("malformed file must be absent, got %v %v", v, ok)
	}

	if _, ok := LoadJSON[map[string]any](filepath.Join(dir, "missing.json")); ok {
		t.Fatalf("missing file must be absent")
	}
	if _, ok := LoadJSON[map[string]any](dir); ok {
		t.Fatalf("directory must be absent")
	}
}
