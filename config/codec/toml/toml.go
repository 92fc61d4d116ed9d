package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Codec implements config.Codec for TOML documents.
type Codec struct{}

// NewCodec creates a TOML codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses a TOML document into a map.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	values := make(map[string]any)

	err := toml.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return values, nil
}

// Encode renders values as a TOML document.
func (c *Codec) Encode(values map[string]any) ([]byte, error) {
	data, err := toml.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}
