package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigurationID(t *testing.T) {
	if got := ConfigurationID("TOUR DE FRANCE", DesignCycling, 5); got != "TOUR-DE-FRANCE_Cycling_5" {
		t.Errorf("ConfigurationID = %q", got)
	}
	if got := ConfigurationID("", "Yoga", 3); got != "_Yoga_3" {
		t.Errorf("ConfigurationID with empty text = %q", got)
	}
	for _, design := range []Design{"../../../escaped/x", `..\x`, "a/b", ".."} {
		id := ConfigurationID("AB", design, 3)
		if strings.ContainsAny(id, `/\.`) {
			t.Errorf("ConfigurationID(%q) = %q keeps path characters", design, id)
		}
	}
}

func TestArtifactStoreRejectsEscapingIDs(t *testing.T) {
	store := ArtifactStore{Dir: t.TempDir()}
	for _, id := range []string{"../x", "../../x", "a/b", ".."} {
		if _, err := store.Write("svg", id, 400, []byte("<svg/>")); !errors.Is(err, ErrInvalidArtifactPath) {
			t.Errorf("Write(%q) = %v, want %v", id, err, ErrInvalidArtifactPath)
		}
		if _, err := store.PNGPath(id, 400); !errors.Is(err, ErrInvalidArtifactPath) {
			t.Errorf("PNGPath(%q) = %v, want %v", id, err, ErrInvalidArtifactPath)
		}
	}
	var stray []string
	filepath.WalkDir(store.Dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && filepath.Dir(path) != filepath.Join(store.Dir, "SVG") {
			stray = append(stray, path)
		}
		return nil
	})
	if len(stray) != 0 {
		t.Errorf("files written outside SVG/: %v", stray)
	}
}

func TestArtifactStore(t *testing.T) {
	store := ArtifactStore{Dir: t.TempDir()}
	id := ConfigurationID("AB", DesignRunning, 3)

	wantSVG := filepath.Join(store.Dir, "SVG", "AB_Running_3_400.svg")
	if got, err := store.SVGPath(id, 400); err != nil || got != wantSVG {
		t.Errorf("SVGPath = %q, %v; want %q", got, err, wantSVG)
	}
	if store.Exists(wantSVG) {
		t.Fatal("artifact exists before writing")
	}

	path, err := store.Write("svg", id, 400, []byte("<svg/>"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != wantSVG {
		t.Errorf("Write stored at %q, want %q", path, wantSVG)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("stored data = %q, %v", data, err)
	}
	if !store.Exists(path) {
		t.Error("Exists = false after Write")
	}
	if store.Exists(filepath.Dir(path)) {
		t.Error("Exists = true for a directory")
	}
	if got, err := store.PNGPath(id, 400); err != nil || got != filepath.Join(store.Dir, "PNG", "AB_Running_3_400.png") {
		t.Errorf("PNGPath = %q, %v", got, err)
	}
}
