package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/docexport/internal/document"
)

// readPayload reads a form payload from path, or from in when path is "-".
func readPayload(path string, in io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}
	return data, nil
}

// loadDocument reads and decodes a wizard payload of the given kind.
func loadDocument(path, rawKind string, in io.Reader) (*document.Document, error) {
	kind, err := document.ParseKind(rawKind)
	if err != nil {
		return nil, err
	}
	payload, err := readPayload(path, in)
	if err != nil {
		return nil, err
	}
	doc, err := document.Decode(kind, payload, now())
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", kind, err)
	}
	return doc, nil
}
