package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed portfolio.json
var embedded []byte

// Load decodes and validates the embedded portfolio document.
func Load() (*Portfolio, error) {
	return Decode(embedded)
}

// Decode validates raw against the document schema, decodes it, and builds the catalog.
func Decode(raw []byte) (*Portfolio, error) {
	if err := validateDocument(raw); err != nil {
		return nil, fmt.Errorf("validate portfolio: %w", err)
	}

	var p Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	c, err := New(p.Projects)
	if err != nil {
		return nil, err
	}
	p.catalog = c
	return &p, nil
}
