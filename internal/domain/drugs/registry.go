package drugs

import (
	"fmt"
	"math"
	"strings"

	"vetcalc/internal/domain/species"
)

// Registry es el catálogo inmutable de medicamentos. Conserva el orden de alta.
type Registry struct {
	order []string
	byID  map[string]DrugSpec
}

// NewRegistry valida y copia las entradas. Una regla Allowed necesita dosis >= 0
// y 0 < min <= max; una Disallowed necesita motivo.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(entries)),
		byID:  make(map[string]DrugSpec, len(entries)),
	}

	for _, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: empty drug id", ErrInvalidCatalog)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate drug id %q", ErrInvalidCatalog, id)
		}
		if err := validateSpec(id, e.Spec); err != nil {
			return nil, err
		}

		r.order = append(r.order, id)
		r.byID[id] = e.Spec.clone()
	}

	return r, nil
}

// DefaultRegistry arma el registro con DefaultCatalog. El catálogo de fábrica
// está cubierto por tests, un error acá es un bug de programación.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultCatalog())
	if err != nil {
		panic(err)
	}
	return r
}

func validateSpec(id string, spec DrugSpec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return fmt.Errorf("%w: drug %q has no name", ErrInvalidCatalog, id)
	}

	for sp, rule := range spec.Rules {
		switch rr := rule.(type) {
		case Allowed:
			if !finite(rr.DosePerKg) || rr.DosePerKg < 0 {
				return fmt.Errorf("%w: %s/%s dose per kg must be >= 0", ErrInvalidCatalog, id, sp)
			}
			if !finite(rr.MinWeight) || !finite(rr.MaxWeight) || rr.MinWeight <= 0 || rr.MaxWeight <= 0 {
				return fmt.Errorf("%w: %s/%s weights must be positive", ErrInvalidCatalog, id, sp)
			}
			if rr.MinWeight > rr.MaxWeight {
				return fmt.Errorf("%w: %s/%s min weight above max weight", ErrInvalidCatalog, id, sp)
			}
		case Disallowed:
			if strings.TrimSpace(rr.Reason) == "" {
				return fmt.Errorf("%w: %s/%s disallowed without reason", ErrInvalidCatalog, id, sp)
			}
		default:
			return fmt.Errorf("%w: %s/%s has no rule", ErrInvalidCatalog, id, sp)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Lookup busca por id estable. Devuelve una copia.
func (r *Registry) Lookup(id string) (DrugSpec, bool) {
	spec, ok := r.byID[id]
	if !ok {
		return DrugSpec{}, false
	}
	return spec.clone(), true
}

// List devuelve todo el catálogo en orden de alta.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Entry{ID: id, Spec: r.byID[id].clone()})
	}
	return out
}

// ListForSpecies filtra por regla Allowed para la especie, sin reordenar.
func (r *Registry) ListForSpecies(s species.Species) []Entry {
	out := make([]Entry, 0)
	for _, id := range r.order {
		spec := r.byID[id]
		if !spec.AllowedFor(s) {
			continue
		}
		out = append(out, Entry{ID: id, Spec: spec.clone()})
	}
	return out
}

// IDByName resuelve el id a partir del nombre comercial exacto.
func (r *Registry) IDByName(name string) (string, bool) {
	for _, id := range r.order {
		if r.byID[id].Name == name {
			return id, true
		}
	}
	return "", false
}

func (r *Registry) Len() int {
	return len(r.order)
}
