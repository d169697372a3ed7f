package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	scpdoc "github.com/Sharkmare/SCP-DOC"
	"github.com/Sharkmare/SCP-DOC/internal/yamlutil"
)

// Sentinel errors for document loading.
var (
	ErrReadDocument     = errors.New("failed to read document file")
	ErrParseDocument    = errors.New("failed to parse document file")
	ErrInvalidExtension = errors.New("document file must have .json, .yaml, or .yml extension")
)

// loadRecord reads a document file whole and decodes it by extension.
func loadRecord(path string) (scpdoc.Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	var doc map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseDocument, err)
		}
	case ".yaml", ".yml":
		if err := yamlutil.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return scpdoc.Record(doc), nil
}
