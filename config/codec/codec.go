// Package codec selects a config.Codec from a source file name.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-settings/config"
	jsoncodec "github.com/0xalexb/hjarta-settings/config/codec/json"
	tomlcodec "github.com/0xalexb/hjarta-settings/config/codec/toml"
	yamlcodec "github.com/0xalexb/hjarta-settings/config/codec/yaml"
)

// ErrUnknownFormat is returned when the file extension has no codec.
var ErrUnknownFormat = errors.New("unknown config format")

// ForPath returns the codec matching the extension of path.
// Supported extensions are .json, .yaml, .yml and .toml.
//
//nolint:ireturn // the concrete codec depends on the extension.
func ForPath(path string) (config.Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return jsoncodec.NewCodec(), nil
	case ".yaml", ".yml":
		return yamlcodec.NewCodec(""), nil
	case ".toml":
		return tomlcodec.NewCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
