package species

import "strings"

// Species identifica la especie animal. Los valores van en español y son
// estables porque aparecen en el store y en el export.
type Species string

const (
	Perro  Species = "perro"
	Gato   Species = "gato"
	Oveja  Species = "oveja"
	Conejo Species = "conejo"
	Aves   Species = "aves"
)

var all = []Species{Perro, Gato, Oveja, Conejo, Aves}

// All devuelve las especies conocidas en orden de presentación.
func All() []Species {
	out := make([]Species, len(all))
	copy(out, all)
	return out
}

// Parse normaliza (trim + lower). No valida contra All: una especie
// desconocida es un caso legítimo (el catálogo simplemente no la tiene).
func Parse(s string) Species {
	return Species(strings.ToLower(strings.TrimSpace(s)))
}

func (s Species) Known() bool {
	for _, k := range all {
		if k == s {
			return true
		}
	}
	return false
}

// Label devuelve el nombre para mostrar ("perro" => "Perro").
func (s Species) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func (s Species) String() string { return string(s) }
