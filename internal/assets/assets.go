// Package assets provides embedded stylesheets for rendered documents.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed styles/*
var styles embed.FS

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadStyle loads an embedded CSS style by name. The name should not
// include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrStyleNotFound, name, strings.Join(Styles(), ", "))
	}

	return string(content), nil
}

// Styles returns the names of all embedded styles, sorted.
func Styles() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	sort.Strings(names)
	return names
}

// ValidateAssetName rejects names that could escape the asset directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
