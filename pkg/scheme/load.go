package scheme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load decodes a JSON array of scheme records from r.
// This is the only external data boundary of the engine: the caller fetches
// or opens the raw record list, and everything downstream is pure
// computation over the decoded slice.
func Load(r io.Reader) ([]Scheme, error) {
	var schemes []Scheme
	if err := json.NewDecoder(r).Decode(&schemes); err != nil {
		return nil, fmt.Errorf("decode schemes: %w", err)
	}
	return schemes, nil
}

// LoadFile reads a JSON records file and returns the decoded schemes.
func LoadFile(path string) ([]Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
