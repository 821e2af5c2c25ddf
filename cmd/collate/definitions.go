package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"packrat/item"
)

// loadDefinitions reads a definition file and overlays its entries onto the
// built-in catalog. YAML and JSON are accepted; entries are validated
// through the normal construction path.
func loadDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}

	var file item.DefinitionsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse yaml definitions: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse json definitions: %w", err)
		}
	default:
		return fmt.Errorf("unsupported definitions format %q", filepath.Ext(path))
	}

	for _, params := range file {
		def, err := item.NewDefinition(params)
		if err != nil {
			return fmt.Errorf("definition %q: %w", params.Name, err)
		}
		itemCatalog[def.Name] = def
	}
	return nil
}
