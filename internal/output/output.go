//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package output serializes the demo dataset to files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rafael-alani/siphon-backend/internal/models"
)

// Writer defines the interface that all output formats must implement.
type Writer interface {
	// Name returns the format name.
	Name() string

	// Extension returns the file extension including the dot.
	Extension() string

	// WriteCompanies writes the company roster to path.
	WriteCompanies(path string, companies []models.Company) error

	// WriteTrades writes the trade list to path.
	WriteTrades(path string, trades []models.Trade) error
}

var (
	registry = make(map[string]Writer)
	mu       sync.RWMutex
)

// Register adds a writer to the registry.
func Register(w Writer) {
	mu.Lock()
	defer mu.Unlock()
	registry[w.Name()] = w
}

// Get retrieves a writer by format name.
func Get(name string) (Writer, error) {
	mu.RLock()
	defer mu.RUnlock()

	w, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return w, nil
}

// List returns all registered format names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths holds the destinations of the two documents.
type Paths struct {
	Companies string
	Trades    string
}

// ResolvePaths joins file names onto dir and swaps their extension for
// the writer's.
func ResolvePaths(w Writer, dir, companiesFile, tradesFile string) Paths {
	return Paths{
		Companies: filepath.Join(dir, withExtension(companiesFile, w.Extension())),
		Trades:    filepath.Join(dir, withExtension(tradesFile, w.Extension())),
	}
}

func withExtension(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// Write writes both documents with w.
func Write(w Writer, paths Paths, companies []models.Company, trades []models.Trade) error {
	if err := w.WriteCompanies(paths.Companies, companies); err != nil {
		return fmt.Errorf("failed to write companies: %w", err)
	}
	if err := w.WriteTrades(paths.Trades, trades); err != nil {
		return fmt.Errorf("failed to write trades: %w", err)
	}
	return nil
}

// writeAtomic writes the output of fill to a temporary file next to path
// and renames it into place.
func writeAtomic(path string, fill func(f *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := fill(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

func init() {
	Register(&JSONWriter{})
	Register(&XLSXWriter{})
}
