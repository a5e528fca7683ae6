package filter

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	ErrDecode = errors.New("decode filter")
	ErrEncode = errors.New("encode filter")
)

// Decode reads one YAML filter document. A missing pattern key decodes to "".
func Decode(r io.Reader) (Filter, error) {
	var f Filter
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Filter{}, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return Filter{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return f, nil
}

// Encode writes f as a YAML document.
func Encode(w io.Writer, f Filter) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
