package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Read parses a YAML snapshot. Unknown keys are rejected so typos do not
// silently reset a record.
func Read(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse snapshot YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}
	return &s, nil
}

// ReadFile parses the YAML snapshot at path.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return Read(bytes.NewReader(data))
}

// Write renders s as YAML.
func Write(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot YAML: %w", err)
	}
	return enc.Close()
}

// WriteFile renders s as YAML into path.
func WriteFile(path string, s *Snapshot) error {
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}
