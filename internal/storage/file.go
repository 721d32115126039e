// internal/storage/file.go
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go-survivor/internal/component"
)

type codec int

const (
	codecJSON codec = iota
	codecYAML
)

// FileStore keeps the save record in a single JSON or YAML file, picked by extension.
type FileStore struct {
	path  string
	codec codec
}

// NewFileStore returns a store writing to path (.json, .yaml or .yml).
func NewFileStore(path string) (*FileStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &FileStore{path: path, codec: codecJSON}, nil
	case ".yaml", ".yml":
		return &FileStore{path: path, codec: codecYAML}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Path returns the save file location.
func (s *FileStore) Path() string {
	return s.path
}

// Save writes the record atomically: a temp file in the same directory is renamed over the target.
func (s *FileStore) Save(_ context.Context, p component.Progression) error {
	data, err := s.marshal(EncodeFields(p))
	if err != nil {
		return fmt.Errorf("encoding save record: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".save-*")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}

// Load reads the record. A missing file is not an error: ok is false.
func (s *FileStore) Load(_ context.Context) (component.Progression, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return component.Progression{}, false, nil
	}
	if err != nil {
		return component.Progression{}, false, fmt.Errorf("reading save file: %w", err)
	}

	fields, err := s.unmarshal(data)
	if err != nil {
		return component.Progression{}, false, fmt.Errorf("decoding save file %s: %w", s.path, err)
	}
	return DecodeFields(fields), true, nil
}

func (s *FileStore) marshal(fields map[string]any) ([]byte, error) {
	if s.codec == codecYAML {
		return yaml.Marshal(fields)
	}
	return json.MarshalIndent(fields, "", "  ")
}

func (s *FileStore) unmarshal(data []byte) (map[string]any, error) {
	fields := map[string]any{}
	if s.codec == codecYAML {
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		return fields, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}
