package gir

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoNamespace is returned for documents without a <namespace> element.
var ErrNoNamespace = errors.New("repository declares no namespace")

// Load decodes a GIR document.
func Load(r io.Reader) (*Repository, error) {
	var repo Repository
	if err := xml.NewDecoder(r).Decode(&repo); err != nil {
		return nil, fmt.Errorf("decode repository: %w", err)
	}
	if repo.Namespace() == nil {
		return nil, ErrNoNamespace
	}
	return &repo, nil
}

// LoadFile decodes the GIR document stored at path.
func LoadFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	repo, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return repo, nil
}
