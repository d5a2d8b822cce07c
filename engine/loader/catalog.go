package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Carmen-Shannon/oxy-carousel/common"
	"github.com/Carmen-Shannon/oxy-carousel/engine/carousel"
)

// ErrEmptyCatalog is returned when a catalog parses but lists nothing.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// CatalogEntry is one record of models.json.
type CatalogEntry struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Role    string   `json:"role"`
	Desc    string   `json:"desc"`
	Phrases []string `json:"phrases"`
	URL     string   `json:"url"`
	Scale   float32  `json:"scale"`

	generatedID bool
}

// Metadata converts the entry into display metadata. The label falls back to an id read from the
// catalog, the description to the joined phrases and then desc.
//
// Returns:
//   - carousel.Metadata: the display record
func (e CatalogEntry) Metadata() carousel.Metadata {
	desc := e.Desc
	if len(e.Phrases) > 0 {
		desc = strings.Join(e.Phrases, " ")
	}
	label := e.Label
	if !e.generatedID {
		label = common.Coalesce(label, e.ID)
	}
	return carousel.Metadata{
		ID:          e.ID,
		Label:       label,
		Role:        e.Role,
		Description: desc,
	}
}

// BaseScale returns the scale hint, 1 when absent or non-positive.
func (e CatalogEntry) BaseScale() float32 {
	if e.Scale <= 0 {
		return 1
	}
	return e.Scale
}

// ReadCatalog reads a catalog file. Relative model urls are resolved against the catalog's
// directory.
//
// Parameters:
//   - path: location of models.json
//
// Returns:
//   - []CatalogEntry: the entries in file order
//   - error: error if the file cannot be read or parsed, or is empty
func ReadCatalog(path string) ([]CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	entries, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range entries {
		if entries[i].URL != "" && !filepath.IsAbs(entries[i].URL) {
			entries[i].URL = filepath.Join(dir, entries[i].URL)
		}
	}
	return entries, nil
}

// ParseCatalog decodes a catalog JSON array. Entries without an id are given a random UUID.
//
// Parameters:
//   - r: the JSON source
//
// Returns:
//   - []CatalogEntry: the entries in source order
//   - error: error if decoding fails or the array is empty
func ParseCatalog(r io.Reader) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i := range entries {
		if strings.TrimSpace(entries[i].ID) == "" {
			entries[i].ID = uuid.NewString()
			entries[i].generatedID = true
		}
	}
	return entries, nil
}
