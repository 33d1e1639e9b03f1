package source

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devzarghami/translate/pkg/i18n"
)

// Format identifies the wire encoding of a translation document.
type Format int

const (
	// FormatJSON decodes documents with encoding/json.
	FormatJSON Format = iota
	// FormatYAML decodes documents with gopkg.in/yaml.v3.
	FormatYAML
)

// Decode parses a translation document into a tree.
func Decode(data []byte, format Format) (i18n.Tree, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	var tree i18n.Tree
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if tree == nil {
		return nil, ErrEmptyPayload
	}
	return tree, nil
}

// formatForPath maps a file extension to a Format. Comparison is
// case-insensitive so .YAML and .yaml behave the same across systems.
func formatForPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
}
