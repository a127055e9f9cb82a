package tiles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MJE43/the-floor-go/internal/floor"
)

// Load reads the tile source CSV. The header row is required and must
// contain "name" and "category" columns; rows with a blank name are
// skipped. Sizing the result to the grid (cyclic repetition,
// truncation, placeholder synthesis) is the grid's job, not the
// loader's.
func Load(path string) ([]floor.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tile source: %w", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]floor.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read tile source header: %w", err)
	}

	nameCol, categoryCol := -1, -1
	for i, field := range header {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			nameCol = i
		case "category":
			categoryCol = i
		}
	}
	if nameCol < 0 || categoryCol < 0 {
		return nil, fmt.Errorf("tile source header missing name/category columns: %v", header)
	}

	var entries []floor.Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tile source row: %w", err)
		}
		if nameCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" {
			continue
		}
		category := ""
		if categoryCol < len(record) {
			category = strings.TrimSpace(record[categoryCol])
		}
		entries = append(entries, floor.Entry{Label: name, Category: category})
	}
	return entries, nil
}
