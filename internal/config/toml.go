package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads settings from a TOML file. Unknown keys are rejected so
// typos do not silently fall back to defaults.
type TOMLLoader struct{}

// NewTOMLLoader creates a TOML settings loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load implements Loader. An empty path yields the defaults.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*Settings, error) {
	return readSettings(ctx, path, func(data []byte) (*Settings, error) {
		return ParseTOML(data)
	})
}

// ParseTOML decodes TOML settings over the defaults and validates the result.
func ParseTOML(data []byte) (*Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			keys := make([]string, 0, len(missing.Errors))
			for _, e := range missing.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("%w: unknown key(s) %s", ErrInvalidSettings, strings.Join(keys, ", "))
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d, column %d: %s", ErrInvalidSettings, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func encodeTOML(s *Settings) ([]byte, error) {
	return toml.Marshal(s)
}
