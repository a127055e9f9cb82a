package tiles

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "floor_tiles.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, "name,category\nPop Music,pop\nTaylor Swift,taylor-swift\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Label != "Pop Music" || entries[0].Category != "pop" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
}

func TestLoadSkipsBlankNames(t *testing.T) {
	path := writeCSV(t, "name,category\nPop Music,pop\n,orphan\n   ,spaces\nMovies,movies\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected blank-name rows skipped, got %d entries", len(entries))
	}
	if entries[1].Label != "Movies" {
		t.Errorf("Expected 'Movies' second, got %q", entries[1].Label)
	}
}

func TestLoadTrimsFields(t *testing.T) {
	path := writeCSV(t, "name,category\n  Pop Music  ,  pop  \n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries[0].Label != "Pop Music" || entries[0].Category != "pop" {
		t.Errorf("Expected trimmed fields, got %+v", entries[0])
	}
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, "category,name\npop,Pop Music\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries[0].Label != "Pop Music" || entries[0].Category != "pop" {
		t.Errorf("Expected columns resolved by header, got %+v", entries[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestLoadMissingHeaderColumns(t *testing.T) {
	path := writeCSV(t, "foo,bar\na,b\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error when header lacks name/category")
	}
}
