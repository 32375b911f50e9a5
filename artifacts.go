package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

var ErrInvalidArtifactPath = errors.New("artifact path outside the store")

// ArtifactStore keeps the generated drawings of configurations placed in the cart,
// one folder per file type.
type ArtifactStore struct {
	Dir string
}

// idPart keeps letters and digits; anything else, path separators and dots included,
// becomes a dash.
func idPart(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '-'
	}, s)
}

// ConfigurationID names a configuration the way the workshop files it.
func ConfigurationID(text string, design Design, barCount int) string {
	return fmt.Sprintf("%s_%s_%d", idPart(text), idPart(string(design)), barCount)
}

// path resolves the file of an artifact and refuses anything that would land outside
// the folder of its kind.
func (s ArtifactStore) path(kind, id string, width int) (string, error) {
	folder := filepath.Join(s.Dir, strings.ToUpper(kind))
	p := filepath.Join(folder, fmt.Sprintf("%s_%d.%s", id, width, kind))
	rel, err := filepath.Rel(folder, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		return "", fmt.Errorf("%s artifact %q: %w", kind, id, ErrInvalidArtifactPath)
	}
	return p, nil
}

func (s ArtifactStore) SVGPath(id string, width int) (string, error) { return s.path("svg", id, width) }

func (s ArtifactStore) PNGPath(id string, width int) (string, error) { return s.path("png", id, width) }

// Write stores data under the path for kind, creating folders as needed.
func (s ArtifactStore) Write(kind, id string, width int, data []byte) (string, error) {
	p, err := s.path(kind, id, width)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact folder: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact '%s': %w", p, err)
	}
	log.Printf("Stored %s artifact: %s", strings.ToUpper(kind), p)
	return p, nil
}

// Exists reports whether the artifact is on disk.
func (s ArtifactStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
