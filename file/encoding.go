// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Encoder turns a value into file content for [Write].
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder fills v from file content for [Read].
type Decoder interface {
	Decode(b []byte, v any) error
}

// EncoderFunc adapts a function to [Encoder].
type EncoderFunc func(v any) ([]byte, error)

// Encode calls f(v).
func (f EncoderFunc) Encode(v any) ([]byte, error) { return f(v) }

// DecoderFunc adapts a function to [Decoder].
type DecoderFunc func(b []byte, v any) error

// Decode calls f(b, v).
func (f DecoderFunc) Decode(b []byte, v any) error { return f(b, v) }

// Scheme is an encoding that works in both directions.
type Scheme interface {
	Encoder
	Decoder
}

type scheme struct {
	EncoderFunc
	DecoderFunc
}

// Built-in schemes.
var (
	// JSON encodes with encoding/json.
	JSON Scheme = scheme{
		EncoderFunc: json.Marshal,
		DecoderFunc: json.Unmarshal,
	}

	// TOML encodes with github.com/BurntSushi/toml.
	// The value must be a table: a struct or a map.
	TOML Scheme = scheme{
		EncoderFunc: encodeTOML,
		DecoderFunc: decodeTOML,
	}

	// YAML encodes with gopkg.in/yaml.v3.
	YAML Scheme = scheme{
		EncoderFunc: yaml.Marshal,
		DecoderFunc: yaml.Unmarshal,
	}

	// Raw passes bytes through. It encodes []byte and string values and
	// decodes into *[]byte or *string.
	Raw Scheme = scheme{
		EncoderFunc: encodeRaw,
		DecoderFunc: decodeRaw,
	}
)

// ErrUnsupportedValue is returned by [Raw] and [TOML] for values they
// cannot carry.
var ErrUnsupportedValue = errors.New("file: unsupported value")

func encodeTOML(v any) ([]byte, error) {
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Struct, reflect.Map:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeTOML(b []byte, v any) error {
	_, err := toml.Decode(string(b), v)
	return err
}

func encodeRaw(v any) ([]byte, error) {
	switch v := v.(type) {
	case []byte:
		return bytes.Clone(v), nil
	case string:
		return []byte(v), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func decodeRaw(b []byte, v any) error {
	switch v := v.(type) {
	case *[]byte:
		*v = bytes.Clone(b)
		return nil
	case *string:
		*v = string(b)
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}
