package vaccines

import (
	"fmt"
	"strings"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/caldate"
)

// Catalog es el listado inmutable de vacunas por especie.
type Catalog struct {
	bySpecies map[species.Species][]CatalogEntry
}

// NewCatalog valida y copia las entradas: id y nombre no vacíos, intervalo > 0,
// ids únicos dentro de cada especie.
func NewCatalog(entries map[species.Species][]CatalogEntry) (*Catalog, error) {
	c := &Catalog{bySpecies: make(map[species.Species][]CatalogEntry, len(entries))}

	for sp, list := range entries {
		seen := make(map[string]bool, len(list))
		out := make([]CatalogEntry, 0, len(list))
		for _, e := range list {
			if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Name) == "" {
				return nil, fmt.Errorf("%w: %s entry without id or name", ErrInvalidCatalog, sp)
			}
			if e.IntervalDays <= 0 {
				return nil, fmt.Errorf("%w: %s/%s interval must be positive", ErrInvalidCatalog, sp, e.ID)
			}
			if seen[e.ID] {
				return nil, fmt.Errorf("%w: duplicate vaccine %s/%s", ErrInvalidCatalog, sp, e.ID)
			}
			seen[e.ID] = true
			out = append(out, e)
		}
		c.bySpecies[sp] = out
	}

	return c, nil
}

// DefaultCatalog arma el catálogo de fábrica. Un error acá es un bug.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(map[species.Species][]CatalogEntry{
		species.Perro: {
			{ID: "parvovirus-perro", Name: "Parvovirus", IntervalDays: 365, Description: "Protección contra parvovirus"},
			{ID: "moquillo-perro", Name: "Moquillo", IntervalDays: 365, Description: "Protección contra moquillo"},
			{ID: "rabia-perro", Name: "Rabia", IntervalDays: 730, Description: "Inmunización contra rabia (bienal)"},
		},
		species.Gato: {
			{ID: "triple-felina", Name: "Triple Felina", IntervalDays: 365, Description: "Calicivirus, rinotraquetis, panleucopenia"},
			{ID: "rabia-gato", Name: "Rabia", IntervalDays: 730, Description: "Inmunización contra rabia (bienal)"},
		},
		species.Oveja: {
			{ID: "clostridiales-oveja", Name: "Clostridiales", IntervalDays: 365, Description: "Protección contra enfermedades clostridiales"},
		},
		species.Conejo: {
			{ID: "mixomatosis", Name: "Mixomatosis", IntervalDays: 365, Description: "Protección contra mixomatosis"},
			{ID: "vhd", Name: "VHD", IntervalDays: 365, Description: "Enfermedad Vírica Hemorrágica"},
		},
		species.Aves: {
			{ID: "newcastle", Name: "Newcastle", IntervalDays: 365, Description: "Protección contra Enfermedad de Newcastle"},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// ListForSpecies devuelve las vacunas en orden de catálogo; vacío si la especie no existe.
func (c *Catalog) ListForSpecies(sp species.Species) []CatalogEntry {
	list := c.bySpecies[sp]
	out := make([]CatalogEntry, len(list))
	copy(out, list)
	return out
}

func (c *Catalog) Lookup(sp species.Species, vaccineID string) (CatalogEntry, bool) {
	for _, e := range c.bySpecies[sp] {
		if e.ID == vaccineID {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Register arma el registro de una aplicación. No asigna id ni persiste.
func (c *Catalog) Register(sp species.Species, vaccineID string, administered caldate.Date) (Record, error) {
	if administered.IsZero() {
		return Record{}, ErrInvalidInput
	}
	e, ok := c.Lookup(sp, vaccineID)
	if !ok {
		return Record{}, ErrVaccineNotFound
	}

	// El próximo vencimiento también tiene que entrar en 4 dígitos de año,
	// si no la lista guardada deja de poder leerse.
	next := NextDueDate(administered, e.IntervalDays)
	if !administered.InRange() || !next.InRange() {
		return Record{}, fmt.Errorf("%w: next due date past year %d", ErrInvalidInput, caldate.MaxYear)
	}

	return Record{
		Species:            sp,
		VaccineID:          e.ID,
		VaccineName:        e.Name,
		AdministrationDate: administered,
		NextDueDate:        next,
		IntervalDays:       e.IntervalDays,
	}, nil
}
