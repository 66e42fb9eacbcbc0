package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/uadb/internal/utils"
)

// DefaultCatalog is the seed catalog compiled into the binary.
//
//go:embed catalog.yaml
var DefaultCatalog []byte

// Loader handles loading and parsing of a catalog YAML file
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath. An empty path loads DefaultCatalog.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where the loader reads from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the catalog
func (l *Loader) Load() (CatalogFile, error) {
	if l.filePath == "" {
		return Parse(DefaultCatalog)
	}

	f, err := os.Open(l.filePath)
	if err != nil {
		return CatalogFile{}, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer utils.Close(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return CatalogFile{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes catalog YAML. Unknown keys are rejected so typos in
// hand-edited files surface instead of silently dropping a field.
func Parse(data []byte) (CatalogFile, error) {
	var catalog CatalogFile
	if len(data) == 0 {
		return catalog, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil && err != io.EOF {
		return CatalogFile{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return catalog, nil
}
