package drugs

import (
	"fmt"
	"strconv"

	"vetcalc/internal/domain/species"
)

// Rule es la política de un medicamento para una especie.
// Es una variante cerrada: Allowed o Disallowed, nunca un híbrido.
type Rule interface {
	isRule()
}

// Allowed habilita la especie con dosis por kg y rango de peso (kg, inclusivo).
type Allowed struct {
	DosePerKg float64
	MinWeight float64
	MaxWeight float64
}

// Disallowed prohíbe la especie; Reason se muestra al usuario.
type Disallowed struct {
	Reason string
}

func (Allowed) isRule()    {}
func (Disallowed) isRule() {}

func (a Allowed) Range() WeightRange {
	return WeightRange{Min: a.MinWeight, Max: a.MaxWeight}
}

// WeightRange es el rango válido de peso en kg, ambos extremos incluidos.
type WeightRange struct {
	Min float64 `json:"min_weight"`
	Max float64 `json:"max_weight"`
}

func (r WeightRange) Contains(w float64) bool {
	return w >= r.Min && w <= r.Max
}

// String => "5-100 kg", "0.5-10 kg".
func (r WeightRange) String() string {
	return fmt.Sprintf("%s-%s kg", formatKg(r.Min), formatKg(r.Max))
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DrugSpec es una entrada inmutable del catálogo.
type DrugSpec struct {
	Name         string
	Description  string
	Presentation string
	Route        string // "IM/IV", "SC/IM"...
	Frequency    string // "C/24h"
	Unit         string // "mL", "Ampolla"
	// Concentración de referencia (mg/mL o UI/mL); informativa, no entra en el cálculo.
	Concentration float64
	Warnings      string

	Rules map[species.Species]Rule
}

// Rule devuelve la regla configurada para la especie, si existe.
func (d DrugSpec) Rule(s species.Species) (Rule, bool) {
	r, ok := d.Rules[s]
	return r, ok
}

// AllowedFor indica si la especie tiene una regla Allowed.
func (d DrugSpec) AllowedFor(s species.Species) bool {
	r, ok := d.Rules[s]
	if !ok {
		return false
	}
	_, allowed := r.(Allowed)
	return allowed
}

func (d DrugSpec) clone() DrugSpec {
	out := d
	out.Rules = make(map[species.Species]Rule, len(d.Rules))
	for k, v := range d.Rules {
		out.Rules[k] = v
	}
	return out
}

// Entry asocia el identificador estable con su ficha.
type Entry struct {
	ID   string
	Spec DrugSpec
}

// DoseResult es el resultado de un cálculo exitoso. También es la forma
// persistida dentro de cada registro del historial.
type DoseResult struct {
	DrugID    string          `json:"drug_id"`
	Drug      string          `json:"drug"`
	Species   species.Species `json:"species"`
	Weight    float64         `json:"weight"`
	DosePerKg float64         `json:"dose_per_kg"`
	TotalDose float64         `json:"total_dose"` // redondeado a 4 decimales
	Unit      string          `json:"unit"`
	Route     string          `json:"route"`
	Frequency string          `json:"frequency"`
	Warnings  string          `json:"warnings"`
	Range     WeightRange     `json:"dosage_range"`
}

// TotalDoseText formatea la dosis con 4 decimales fijos ("2.0000").
func (r DoseResult) TotalDoseText() string {
	return strconv.FormatFloat(r.TotalDose, 'f', 4, 64)
}

// Validation es el veredicto de ValidateUsage.
type Validation struct {
	Valid   bool
	Kind    ErrorKind // vacío si Valid
	Message string
}
