package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Saver delivers a finished artifact: writes it to disk, streams it to an
// HTTP client or keeps it in memory. It is only called with complete files.
type Saver interface {
	Save(ctx context.Context, a Artifact) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, a Artifact) error

func (f SaverFunc) Save(ctx context.Context, a Artifact) error {
	return f(ctx, a)
}

// DirSaver writes artifacts into a directory. Files appear atomically: the
// data goes to a temporary file first and is renamed into place.
type DirSaver struct {
	Dir string
}

// NewDirSaver returns a DirSaver for dir.
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Dir: dir}
}

func (d *DirSaver) Save(ctx context.Context, a Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(d.Dir, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", a.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", a.Filename, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", a.Filename, err)
	}
	if err := os.Rename(tmpPath, d.Path(a.Filename)); err != nil {
		return fmt.Errorf("save %s: %w", a.Filename, err)
	}
	return nil
}

// Path returns where an artifact with the given filename is written.
func (d *DirSaver) Path(filename string) string {
	return filepath.Join(d.Dir, filepath.Base(filename))
}

// MemorySaver keeps saved artifacts in memory.
type MemorySaver struct {
	mu        sync.Mutex
	artifacts []Artifact
}

func (m *MemorySaver) Save(_ context.Context, a Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts = append(m.artifacts, a)
	return nil
}

// Artifacts returns a copy of everything saved so far.
func (m *MemorySaver) Artifacts() []Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Artifact(nil), m.artifacts...)
}
