package species

import "testing"

func TestParseAndLabel(t *testing.T) {
	s := Parse("  Perro ")
	if s != Perro {
		t.Fatalf("expected perro, got %q", s)
	}
	if s.Label() != "Perro" {
		t.Fatalf("expected label Perro, got %q", s.Label())
	}
	if !s.Known() {
		t.Fatalf("perro must be known")
	}
	if Parse("dragon").Known() {
		t.Fatalf("dragon must not be known")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "x"
	if All()[0] != Perro {
		t.Fatalf("All must not expose internal slice")
	}
}
