// Package catalog lists named builds for batch rendering.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"camper-renderer/internal/camper"
)

// On disk: {"entries": [{"name": ..., "build": {...}}]}.
type fileCatalog struct {
	Entries []fileEntry `json:"entries"`
}

type fileEntry struct {
	Name  string          `json:"name"`
	Build json.RawMessage `json:"build"`
}

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Load reads a JSON catalog. Names must be unique and usable as file names;
// builds go through camper.Decode, so a missing frame or wheel package
// becomes standard.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var file fileCatalog
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Entries))
	entries := make([]Entry, 0, len(file.Entries))
	for i, fe := range file.Entries {
		if !validName.MatchString(fe.Name) {
			return nil, fmt.Errorf("catalog: %s: entry %d: invalid name %q", path, i, fe.Name)
		}
		if seen[fe.Name] {
			return nil, fmt.Errorf("catalog: %s: duplicate name %q", path, fe.Name)
		}
		seen[fe.Name] = true

		build, err := camper.Decode(orEmpty(fe.Build))
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: entry %q: %w", path, fe.Name, err)
		}
		entries = append(entries, Entry{Name: fe.Name, Build: build})
	}
	return entries, nil
}

func orEmpty(b json.RawMessage) []byte {
	if len(b) == 0 {
		return []byte("{}")
	}
	return b
}

// Matrix returns base under every frame and wheel package combination,
// named "<frame>-<wheels>", frames outermost.
func Matrix(base camper.Config) []Entry {
	var out []Entry
	for _, f := range camper.Frames {
		for _, w := range camper.WheelPackages {
			cfg := base
			cfg.Frame, cfg.Wheels = f, w
			out = append(out, Entry{Name: string(f) + "-" + string(w), Build: cfg})
		}
	}
	return out
}
