// internal/catalog/loader.go
// Loads the static destination catalog. A seed catalog ships embedded in
// the binary; deployments can point CATALOG_PATH at their own JSON file.

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed seed/destinations.json
var seedCatalog []byte

// LoadFromFile reads destinations from a JSON file.
func LoadFromFile(path string) ([]Destination, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parse(b)
}

// LoadSeed returns the embedded default catalog.
func LoadSeed() ([]Destination, error) {
	return parse(seedCatalog)
}

// Load builds a repository from the file at path, or from the embedded
// seed when path is empty.
func Load(path string) (Repository, error) {
	var (
		destinations []Destination
		err          error
	)
	if path != "" {
		destinations, err = LoadFromFile(path)
	} else {
		destinations, err = LoadSeed()
	}
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(destinations)
}

func parse(b []byte) ([]Destination, error) {
	var destinations []Destination
	if err := json.Unmarshal(b, &destinations); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return destinations, nil
}
