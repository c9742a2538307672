package themes

import (
	"errors"
	"testing"

	gotheme "github.com/goliatone/go-theme"
)

type stubLoader struct {
	calls    int
	manifest *gotheme.Manifest
	err      error
}

func (s *stubLoader) Load(string) (*gotheme.Manifest, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.manifest, nil
}

func TestSelector_WithoutBasePathUsesClassNamesOnly(t *testing.T) {
	loader := &stubLoader{}
	s := NewSelector(SelectorConfig{}, WithManifestLoader(loader))

	theme, err := s.Select("", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if theme.Name != DefaultTheme || theme.Manifest {
		t.Fatalf("unexpected theme %+v", theme)
	}
	if theme.Classes().Class("footer") != "artia-footer-theme-classic" {
		t.Fatalf("unexpected class %q", theme.Classes().Class("footer"))
	}
	if loader.calls != 0 {
		t.Fatalf("expected no manifest loads without base path")
	}
	if theme.AssetURL("logo") != "" {
		t.Fatalf("expected empty asset url without manifest")
	}
}

func TestSelector_MissingManifestFallsBackOnce(t *testing.T) {
	loader := &stubLoader{err: errors.New("no manifest")}
	s := NewSelector(SelectorConfig{BasePath: "themes", DefaultTheme: "modern"}, WithManifestLoader(loader))

	for range 3 {
		theme, err := s.Select("", "")
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if theme.Name != "modern" || theme.Manifest {
			t.Fatalf("unexpected theme %+v", theme)
		}
	}
	if loader.calls != 1 {
		t.Fatalf("expected failed manifest load to be cached, got %d calls", loader.calls)
	}
}

func TestSelector_RegistersManifest(t *testing.T) {
	loader := &stubLoader{manifest: &gotheme.Manifest{Name: "other", Version: "1.0.0"}}
	s := NewSelector(SelectorConfig{BasePath: "themes", DefaultTheme: "classic"}, WithManifestLoader(loader))

	theme, err := s.Select("classic", "")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !theme.Manifest || theme.Name != "classic" {
		t.Fatalf("expected manifest-backed theme, got %+v", theme)
	}
	if theme.Tokens == nil || theme.CSSVariables == nil {
		t.Fatalf("expected token maps to be initialised")
	}

	if _, err := s.Select("classic", ""); err != nil {
		t.Fatalf("second Select: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected manifest to load once, got %d", loader.calls)
	}
}
