package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrTrailingData is returned when a document holds more than one JSON value.
var ErrTrailingData = errors.New("trailing data after document")

// Parse decodes a JSON document, keeping the key order of every object.
func Parse(data []byte) (*Node, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON value from r.
func Decode(r io.Reader) (*Node, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	node, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return node, nil
}

func decodeValue(decoder *json.Decoder) (*Node, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return NewScalar(token), nil
	}

	switch delim {
	case '{':
		var pairs []Pair
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			name, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyToken)
			}

			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Pair{Key: name, Value: value})
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return NewMapping(pairs...), nil
	case '[':
		var items []*Node
		for decoder.More() {
			item, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return NewSequence(items...), nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}
