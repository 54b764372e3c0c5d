package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/catalog"
	"camper-renderer/internal/pricing"
)

// ManifestEntry represents one rendered build in the output manifest.
type ManifestEntry struct {
	Name    string          `json:"name"`
	Frame   camper.Frame    `json:"frame"`
	Wheels  camper.Wheels   `json:"wheels"`
	Options []camper.Option `json:"options"`
	Price   int             `json:"price"`
	Display string          `json:"display_price"`
	Image   string          `json:"image"`
}

// WriteManifest writes the manifest for the successfully rendered entries.
// Image paths are relative to the manifest's directory.
func WriteManifest(path string, entries []catalog.Entry, results []Result) error {
	dir := filepath.Dir(path)
	out := make([]ManifestEntry, 0, len(entries))
	for i, e := range entries {
		if i >= len(results) || !results[i].Success {
			continue
		}
		img, err := filepath.Rel(dir, results[i].Path)
		if err != nil {
			img = results[i].Path
		}
		price := pricing.Price(e.Build)
		out = append(out, ManifestEntry{
			Name:    e.Name,
			Frame:   e.Build.Frame,
			Wheels:  e.Build.Wheels,
			Options: e.Build.Options(),
			Price:   price,
			Display: pricing.FormatUSD(price),
			Image:   filepath.ToSlash(img),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
