// Package yaml provides a YAML codec for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support. By default the whole document is the key-value map;
// a codec created with a section path reads the map from a nested mapping
// instead, using colon (:) separated keys (e.g. "app:settings").
//
// Usage:
//
//	codec := yaml.NewCodec("")
//	values, err := codec.Decode(data)
//
// Path Conversion:
//   - Empty path "" -> whole document
//   - Single key "key" -> "$.key"
//   - Nested path "app:settings" -> "$.app.settings"
package yaml
