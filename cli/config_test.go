package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigFileMissingPath(t *testing.T) {
	f := &Flags{Database: "original"}
	if err := loadConfigFile("", f); err != nil {
		t.Fatalf("unexpected error for empty path: %s", err)
	}
	if f.Database != "original" {
		t.Errorf("expected Flags unchanged, got %+v", f)
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("database: /custom/mlocate.db\nlog-level: debug\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %s", err)
	}

	f := &Flags{Database: "/var/lib/mlocate/mlocate.db", LogLevel: "warning"}
	if err := loadConfigFile(path, f); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if f.Database != "/custom/mlocate.db" {
		t.Errorf("expected config file to override Database, got %q", f.Database)
	}
	if f.LogLevel != "debug" {
		t.Errorf("expected config file to override LogLevel, got %q", f.LogLevel)
	}
}

func TestValidateFlagsRejectsBadLogLevel(t *testing.T) {
	f := &Flags{Database: "/db", LogLevel: "extremely-verbose"}
	if err := validateFlags(f); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}

func TestValidateFlagsAcceptsDefaults(t *testing.T) {
	f := &Flags{Database: "/db", LogLevel: "warning", DigestAlgorithm: "sha-256"}
	if err := validateFlags(f); err != nil {
		t.Errorf("unexpected error for a valid flag set: %s", err)
	}
}

func TestEffectiveConfigYAMLRoundTrips(t *testing.T) {
	f := &Flags{Database: "/db", LogLevel: "info"}
	out, err := effectiveConfigYAML(f)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out == "" {
		t.Error("expected non-empty YAML output")
	}
	var back Flags
	if err := yaml.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("unexpected error parsing output: %s", err)
	}
	if back != *f {
		t.Errorf("expected round trip to give %+v, got %+v", *f, back)
	}
}
