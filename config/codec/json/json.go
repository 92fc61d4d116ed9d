package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNullDocument is returned when the document is the JSON literal null.
var ErrNullDocument = errors.New("document is null")

// ErrTrailingData is returned when the document is followed by more JSON values.
var ErrTrailingData = errors.New("trailing data after document")

// Codec implements config.Codec for JSON documents.
type Codec struct {
	Indent string
}

// NewCodec creates a JSON codec that indents persisted documents with two spaces.
func NewCodec() *Codec {
	return &Codec{Indent: "  "}
}

// Decode parses a JSON object into a map.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any

	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if raw == nil {
		return nil, ErrNullDocument
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	for key, value := range raw {
		number, isNumber := value.(json.Number)
		if !isNumber {
			continue
		}

		converted, err := convertNumber(number)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		raw[key] = converted
	}

	return raw, nil
}

func convertNumber(number json.Number) (any, error) {
	text := number.String()

	if !strings.ContainsAny(text, ".eE") {
		integer, err := number.Int64()
		if err == nil {
			return integer, nil
		}
	}

	float, err := number.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}

	return float, nil
}

// Encode renders values as a JSON object.
func (c *Codec) Encode(values map[string]any) ([]byte, error) {
	document := make(map[string]any, len(values))

	for key, value := range values {
		float, isFloat := value.(float64)
		if !isFloat {
			document[key] = value

			continue
		}

		number, err := formatFloat(float)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		document[key] = number
	}

	var (
		data []byte
		err  error
	)

	if c.Indent != "" {
		data, err = json.MarshalIndent(document, "", c.Indent)
	} else {
		data, err = json.Marshal(document)
	}

	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return append(data, '\n'), nil
}

func formatFloat(float float64) (json.Number, error) {
	if math.IsNaN(float) || math.IsInf(float, 0) {
		return "", fmt.Errorf("unsupported float value %v", float)
	}

	text := strconv.FormatFloat(float, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}

	return json.Number(text), nil
}
