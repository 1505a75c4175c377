package main

import (
	"strings"
	"testing"

	"github.com/five82/tailview/internal/config"
)

func TestConfigFlagHelpNamesDefaultPath(t *testing.T) {
	f := newFlagSet().Lookup("config")
	if f == nil {
		t.Fatalf("config flag not registered")
	}
	if !strings.Contains(f.Usage, config.DefaultPath()) {
		t.Fatalf("config usage = %q, want it to contain %q", f.Usage, config.DefaultPath())
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--config", "/tmp/tv.toml", "--api", "10.0.0.5:9999", "-v"})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if opts.ConfigPath != "/tmp/tv.toml" {
		t.Fatalf("ConfigPath = %q, want /tmp/tv.toml", opts.ConfigPath)
	}
	if opts.APIBind != "10.0.0.5:9999" {
		t.Fatalf("APIBind = %q, want 10.0.0.5:9999", opts.APIBind)
	}
	if !opts.Verbose {
		t.Fatalf("Verbose = false, want true")
	}

	if _, err := parseFlags([]string{"--nope"}); err == nil {
		t.Fatalf("parseFlags(--nope) returned nil error, want error")
	}
}
