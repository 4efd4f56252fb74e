package exml

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal returns the encoding of doc.
func Marshal(doc *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses an encoded launcher backup. Warnings are only reported
// through the Logger option; use a Decoder to inspect them.
func Unmarshal(data []byte, opts ...Option) (*Document, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// Load reads and decodes the backup stored at path.
func Load(path string, opts ...Option) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := NewDecoder(f, opts...).Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save encodes doc and writes it to path. The data goes to a temporary file
// in the same directory which then replaces path, so a failed write leaves
// any existing file untouched.
func Save(path string, doc *Document, opts ...Option) error {
	data, err := Marshal(doc, opts...)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
