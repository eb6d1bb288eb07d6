package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotPresentation is returned for archives without ppt/presentation.xml.
var ErrNotPresentation = errors.New("not a presentation package")

// Package is an OPC package held in memory. Parts that are never replaced are
// written back with their original compressed bytes.
type Package struct {
	files    []*zip.File
	byName   map[string]*zip.File
	modified map[string][]byte
	added    []string
}

// ReadPackage parses a zip archive from memory.
func ReadPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	p := &Package{
		files:    zr.File,
		byName:   make(map[string]*zip.File, len(zr.File)),
		modified: make(map[string][]byte),
	}
	for _, f := range zr.File {
		p.byName[f.Name] = f
	}

	if _, ok := p.byName["ppt/presentation.xml"]; !ok {
		return nil, ErrNotPresentation
	}
	return p, nil
}

// Has reports whether the package contains name.
func (p *Package) Has(name string) bool {
	if _, ok := p.modified[name]; ok {
		return true
	}
	_, ok := p.byName[name]
	return ok
}

// Names lists the part names: original parts first in archive order, then added ones.
func (p *Package) Names() []string {
	names := make([]string, 0, len(p.files)+len(p.added))
	for _, f := range p.files {
		names = append(names, f.Name)
	}
	return append(names, p.added...)
}

// Part returns the current content of a part.
func (p *Package) Part(name string) ([]byte, error) {
	if data, ok := p.modified[name]; ok {
		return data, nil
	}
	f, ok := p.byName[name]
	if !ok {
		return nil, fmt.Errorf("part not found: %s", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// SetPart replaces or adds a part.
func (p *Package) SetPart(name string, data []byte) {
	if !p.Has(name) {
		p.added = append(p.added, name)
	}
	p.modified[name] = data
}

// WriteTo writes the package as a zip archive.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, f := range p.files {
		data, changed := p.modified[f.Name]
		if !changed {
			if err := zw.Copy(f); err != nil {
				return cw.n, fmt.Errorf("copying %s: %w", f.Name, err)
			}
			continue
		}

		header := &zip.FileHeader{Name: f.Name, Method: f.Method, Modified: f.Modified}
		if err := writePart(zw, header, data); err != nil {
			return cw.n, err
		}
	}

	for _, name := range p.added {
		header := &zip.FileHeader{Name: name, Method: zip.Deflate}
		if err := writePart(zw, header, p.modified[name]); err != nil {
			return cw.n, err
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finalizing archive: %w", err)
	}
	return cw.n, nil
}

func writePart(zw *zip.Writer, header *zip.FileHeader, data []byte) error {
	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating %s: %w", header.Name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", header.Name, err)
	}
	return nil
}

// Save writes the package to path through a temp file in the same directory
// followed by a rename, so path is never left half written.
func (p *Package) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := p.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
