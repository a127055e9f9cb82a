package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirProviderList(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "taylor-swift")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	for _, name := range []string{
		"02-Blank Space.png",
		"01-Shake It Off.JPG",
		"03-Cardigan.jpeg",
		"notes.txt",
		"README.md",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "subdir.png"), 0o755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	p := DirProvider{Base: base}
	ids := p.List("taylor-swift")

	want := []string{"01-Shake It Off.JPG", "02-Blank Space.png", "03-Cardigan.jpeg"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d assets, got %d: %v", len(want), len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Expected %q at position %d, got %q", want[i], i, ids[i])
		}
	}
}

func TestDirProviderMissingFolder(t *testing.T) {
	p := DirProvider{Base: t.TempDir()}
	if ids := p.List("no-such-category"); len(ids) != 0 {
		t.Errorf("Expected zero items for a missing folder, got %v", ids)
	}
}

func TestDirProviderEmptyFolder(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := DirProvider{Base: base}
	if ids := p.List("empty"); len(ids) != 0 {
		t.Errorf("Expected zero items for an empty folder, got %v", ids)
	}
}
