package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the configured section is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when the document or section is not a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Codec implements config.Codec for YAML data.
type Codec struct {
	path string
}

// NewCodec creates a YAML codec reading the key-value map from section path.
// An empty path uses the whole document.
func NewCodec(path string) *Codec {
	return &Codec{path: path}
}

// Decode parses YAML data into a map.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var values map[string]any

	if c.path == "" {
		err := yaml.Unmarshal(data, &values)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		err := c.readPath(data, &values)
		if err != nil {
			return nil, err
		}
	}

	if values == nil {
		return nil, ErrNotMapping
	}

	return values, nil
}

func (c *Codec) readPath(data []byte, target *map[string]any) error {
	pathObj, err := yaml.PathString(convertToYAMLPath(c.path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", c.path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, c.path)
		}

		return fmt.Errorf("reading path %q: %w", c.path, err)
	}

	return nil
}

// Encode renders values as a YAML mapping, nested under the section path if one is set.
func (c *Codec) Encode(values map[string]any) ([]byte, error) {
	var document any = values

	if c.path != "" {
		parts := strings.Split(c.path, ":")
		for i := len(parts) - 1; i >= 0; i-- {
			document = map[string]any{parts[i]: document}
		}
	}

	data, err := yaml.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "app:settings" -> "$.app.settings"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
