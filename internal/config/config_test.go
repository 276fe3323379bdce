package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	c := New()
	if c.Server.Port != DefaultPort || c.Server.Host != DefaultHost {
		t.Errorf("server defaults = %s:%d", c.Server.Host, c.Server.Port)
	}
	if c.Media.Dir != DefaultMediaDir || c.Media.Prefix != DefaultMediaPrefix {
		t.Errorf("media defaults = %+v", c.Media)
	}
	if got := c.Address(); got != "localhost:8480" {
		t.Errorf("Address() = %q", got)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Port != DefaultPort {
		t.Errorf("missing file should yield defaults, got port %d", c.Server.Port)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	c := New()
	c.Name = "testdict"
	c.Profile = "profiles/compact.json"
	c.Render.DefaultLanguage = "en"
	c.Server.Port = 9000
	if err := c.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Name != "testdict" || loaded.Profile != "profiles/compact.json" {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.Render.DefaultLanguage != "en" {
		t.Errorf("render config lost: %+v", loaded.Render)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", loaded.Server.Port)
	}
	if loaded.Path() != path {
		t.Errorf("Path() = %q, want %q", loaded.Path(), path)
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"name":"partial"}`), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Name != "partial" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Server.Port != DefaultPort || c.Media.Prefix != DefaultMediaPrefix {
		t.Errorf("defaults not applied to unset fields: %+v", c)
	}
}
