package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPersona(t *testing.T) {
	p := DefaultPersona()
	if p.Age != 36 {
		t.Errorf("Age = %d; want 36", p.Age)
	}
	if p.College != "Griffith College Dublin" {
		t.Errorf("College = %q", p.College)
	}
	if len(p.Landmarks) != 2 {
		t.Fatalf("got %d landmarks; want 2", len(p.Landmarks))
	}
	if p.Landmarks[0].Name != "Griffith College Dublin" {
		t.Errorf("first landmark = %q; want the college", p.Landmarks[0].Name)
	}
}

func TestLoadPersonaEmptyPath(t *testing.T) {
	p, err := LoadPersona("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Occupation != "Student" {
		t.Errorf("Occupation = %q; want default persona", p.Occupation)
	}
}

func TestLoadPersonaFromYAML(t *testing.T) {
	yml := `
age: 28
occupation: Engineer
workplace: Docklands Office
lifestyle:
  schedule: "9:00 AM - 6:00 PM"
  activities: [swimming]
`
	path := filepath.Join(t.TempDir(), "persona.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPersona(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != 28 || p.Occupation != "Engineer" {
		t.Errorf("overrides not applied: age %d, occupation %q", p.Age, p.Occupation)
	}
	// Unset fields keep their defaults, and landmarks survive.
	if p.College != "Griffith College Dublin" {
		t.Errorf("College = %q; want default retained", p.College)
	}
	if len(p.Landmarks) != 2 {
		t.Errorf("got %d landmarks; want default set retained", len(p.Landmarks))
	}
}

func TestLoadPersonaMissingFile(t *testing.T) {
	if _, err := LoadPersona("/nonexistent/persona.yaml"); err == nil {
		t.Error("expected an error for a missing persona file")
	}
}
