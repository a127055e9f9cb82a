package assets

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Provider lists the ordered asset identifiers for a category deck.
type Provider interface {
	List(category string) []string
}

// DirProvider enumerates per-category image folders under a base
// directory: images/<category>/*.png etc. Identifiers are bare file
// names; the renderer resolves them back to files.
type DirProvider struct {
	Base string
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// List returns the category's asset identifiers in name order. A
// missing or empty folder yields zero items; the duel then runs on its
// synthesized entries alone.
func (p DirProvider) List(category string) []string {
	dir := filepath.Join(p.Base, category)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("image folder not found: %s", dir)
		return nil
	}

	var ids []string
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			ids = append(ids, e.Name())
		}
	}
	return ids
}
