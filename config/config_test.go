package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = `server
    host
        example.com
    port
        8080
    tls
        true
    timeout
        2m30s
    weight
        0.75
hosts
    alpha
    beta
`

func mustConfig(t *testing.T, in string) *Config {
	t.Helper()
	cfg, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestAccessors(t *testing.T) {
	cfg := mustConfig(t, sample)

	host, err := cfg.At("server.host").Value()
	if err != nil || host != "example.com" {
		t.Errorf("host = %q, %v", host, err)
	}
	port, err := cfg.At("server.port").Int()
	if err != nil || port != 8080 {
		t.Errorf("port = %d, %v", port, err)
	}
	tls, err := cfg.At("server.tls").Bool()
	if err != nil || !tls {
		t.Errorf("tls = %v, %v", tls, err)
	}
	timeout, err := cfg.At("server.timeout").Duration()
	if err != nil || timeout != 2*time.Minute+30*time.Second {
		t.Errorf("timeout = %v, %v", timeout, err)
	}
	weight, err := cfg.At("server.weight").Float()
	if err != nil || weight != 0.75 {
		t.Errorf("weight = %v, %v", weight, err)
	}
}

func TestValues(t *testing.T) {
	cfg := mustConfig(t, sample)
	got := cfg.At("hosts").Values()
	want := []string{"alpha", "beta"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestMissingChains(t *testing.T) {
	cfg := mustConfig(t, sample)
	_, err := cfg.At("server.nope.deeper").Value()
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("got %v", err)
	}
	if cfg.At("nope").Values() != nil {
		t.Error("missing key should have no values")
	}
	if cfg.Has("nope") || !cfg.Has("server") {
		t.Error("Has misreports")
	}
}

func TestNoSingleValue(t *testing.T) {
	cfg := mustConfig(t, sample)
	_, err := cfg.At("hosts").Value()
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("two values should not read as one: %v", err)
	}
	_, err = cfg.At("hosts.alpha").Value()
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("a leaf holds no value: %v", err)
	}
}

func TestValueParseErr(t *testing.T) {
	cfg := mustConfig(t, sample)
	_, err := cfg.At("server.host").Int()
	if !errors.Is(err, ErrValueParse) {
		t.Errorf("got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.nccl")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	port, err := cfg.At("server.port").Int()
	if err != nil || port != 8080 {
		t.Errorf("port = %d, %v", port, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.nccl")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadParseErrNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.nccl")
	if err := os.WriteFile(path, []byte("    indented\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "bad.nccl") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestLoadExtends(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.nccl")
	overlay := filepath.Join(dir, "prod.nccl")
	if err := os.WriteFile(base, []byte("server\n    port\n        8080\n    debug\n        true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(overlay, []byte("server\n    port\n        9090\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadExtends(base, overlay)
	if err != nil {
		t.Fatal(err)
	}
	// Name matching unions values rather than replacing them.
	ports := cfg.At("server.port").Values()
	if len(ports) != 2 || ports[0] != "8080" || ports[1] != "9090" {
		t.Errorf("ports = %v", ports)
	}
	debug, err := cfg.At("server.debug").Bool()
	if err != nil || !debug {
		t.Errorf("debug = %v, %v", debug, err)
	}
}
