package media

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name, hash, want string
	}{
		{"plant.png", "a1b2c3d4", "plant.a1b2c3d4.png"},
		{"dir/plant.png", "a1b2c3d4", "plant.a1b2c3d4.png"},
		{"noext", "a1b2c3d4", "noext.a1b2c3d4"},
	}
	for _, tt := range tests {
		if got := fingerprint(tt.name, tt.hash); got != tt.want {
			t.Errorf("fingerprint(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Set("plant.png", "plant.a1b2c3d4.png")

	if got := m.Resolve("plant.png"); got != "plant.a1b2c3d4.png" {
		t.Errorf("Resolve = %q", got)
	}
	if got := m.Resolve("unknown.png"); got != "unknown.png" {
		t.Errorf("unmapped name should pass through, got %q", got)
	}
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(`{"plant.png":"plant.beef.png"}`), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if got := m.Resolve("plant.png"); got != "plant.beef.png" {
		t.Errorf("Resolve = %q", got)
	}

	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestResolvers(t *testing.T) {
	m := NewManifest()
	m.Set("plant.png", "plant.beef.png")

	r := NewResolver(m, "/media/")
	if got := r.Asset("plant.png"); got != "/media/plant.beef.png" {
		t.Errorf("manifest resolver = %q", got)
	}

	p := NewPassthroughResolver("/media/")
	if got := p.Asset("plant.png"); got != "/media/plant.png" {
		t.Errorf("passthrough resolver = %q", got)
	}
}

func TestDiskStoreRoundtrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	content := "not really a png"
	published, err := store.Put("plant.png", "image/png", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(published, "plant.") || !strings.HasSuffix(published, ".png") {
		t.Errorf("published name not fingerprinted: %q", published)
	}

	obj, err := store.Open(published)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if obj.Name != "plant.png" || obj.ContentType != "image/png" {
		t.Errorf("metadata lost: %+v", obj)
	}
	if obj.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", obj.Size, len(content))
	}

	data, err := os.ReadFile(obj.Path)
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(data) != content {
		t.Errorf("content = %q", data)
	}

	if err := store.Remove(published); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := store.Open(published); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open after Remove = %v, want ErrNotFound", err)
	}
	if err := store.Remove(published); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove = %v, want ErrNotFound", err)
	}
}

func TestDiskStoreSizeLimit(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 4)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	_, err = store.Put("big.png", "image/png", 10, strings.NewReader("0123456789"))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Put oversized = %v, want ErrTooLarge", err)
	}
}

func TestDiskStoreContentAddressing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	a, err := store.Put("plant.png", "image/png", 3, strings.NewReader("abc"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.Put("plant.png", "image/png", 3, strings.NewReader("xyz"))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("different content produced the same published name %q", a)
	}
}
