package catalog

import "camper-renderer/internal/camper"

// Entry is one named build in a catalog.
type Entry struct {
	Name  string        `json:"name"`
	Build camper.Config `json:"build"`
}
