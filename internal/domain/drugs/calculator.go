package drugs

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"vetcalc/internal/domain/species"
)

// Calculator aplica las reglas del registro. No tiene efectos laterales.
type Calculator struct {
	registry *Registry
}

func NewCalculator(registry *Registry) *Calculator {
	return &Calculator{registry: registry}
}

func (c *Calculator) Registry() *Registry {
	return c.registry
}

// Calculate computa la dosis total. Orden de chequeo:
// peso inválido -> medicamento -> especie configurada -> especie permitida -> rango.
func (c *Calculator) Calculate(drugID string, sp species.Species, weight float64) (DoseResult, error) {
	spec, rule, derr := c.check(drugID, sp, weight)
	if derr != nil {
		return DoseResult{}, derr
	}

	return DoseResult{
		DrugID:    drugID,
		Drug:      spec.Name,
		Species:   sp,
		Weight:    weight,
		DosePerKg: rule.DosePerKg,
		TotalDose: Round4(weight * rule.DosePerKg),
		Unit:      spec.Unit,
		Route:     spec.Route,
		Frequency: spec.Frequency,
		Warnings:  spec.Warnings,
		Range:     rule.Range(),
	}, nil
}

// Validate recorre la misma cadena que Calculate y devuelve un veredicto legible.
func (c *Calculator) Validate(drugID string, sp species.Species, weight float64) Validation {
	_, rule, derr := c.check(drugID, sp, weight)
	if derr == nil {
		return Validation{Valid: true, Message: "OK"}
	}

	msg := derr.Message
	switch derr.Kind {
	case KindSpeciesNotConfigured:
		msg = "Especie no configurada"
	case KindSpeciesNotAllowed:
		msg = derr.Reason
		if msg == "" {
			msg = "No permitido para esta especie"
		}
	case KindWeightOutOfRange:
		if weight < rule.MinWeight {
			msg = fmt.Sprintf("Animal muy ligero. Mínimo: %s kg", formatKg(rule.MinWeight))
		} else {
			msg = fmt.Sprintf("Animal muy pesado. Máximo: %s kg", formatKg(rule.MaxWeight))
		}
	}

	return Validation{Valid: false, Kind: derr.Kind, Message: msg}
}

// check es la única implementación de la cadena de reglas; Calculate y
// Validate dependen de ella para tener la misma precedencia.
func (c *Calculator) check(drugID string, sp species.Species, weight float64) (DrugSpec, Allowed, *DoseError) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return DrugSpec{}, Allowed{}, &DoseError{Kind: KindInvalidWeight, Message: "Peso inválido"}
	}

	spec, ok := c.registry.Lookup(drugID)
	if !ok {
		return DrugSpec{}, Allowed{}, &DoseError{Kind: KindDrugNotFound, Message: "Medicamento no encontrado"}
	}

	rule, ok := spec.Rule(sp)
	if !ok {
		return spec, Allowed{}, &DoseError{
			Kind:    KindSpeciesNotConfigured,
			Message: "Especie no registrada para este medicamento",
		}
	}

	switch rr := rule.(type) {
	case Disallowed:
		return spec, Allowed{}, &DoseError{
			Kind:    KindSpeciesNotAllowed,
			Message: fmt.Sprintf("No permitido para %s. Razón: %s", sp, rr.Reason),
			Reason:  rr.Reason,
		}
	case Allowed:
		rng := rr.Range()
		if !rng.Contains(weight) {
			return spec, rr, &DoseError{
				Kind:    KindWeightOutOfRange,
				Message: fmt.Sprintf("Peso fuera de rango válido (%s)", rng),
				Range:   &rng,
			}
		}
		return spec, rr, nil
	default:
		return spec, Allowed{}, &DoseError{
			Kind:    KindSpeciesNotConfigured,
			Message: "Especie no registrada para este medicamento",
		}
	}
}

// Round4 redondea a 4 decimales como toFixed(4): sobre el valor decimal exacto
// del float64 (no sobre x*1e4 ya redondeado en binario), mitad lejos de cero.
// 2.00005 se guarda como 2.0000499999... y queda 2.0000.
func Round4(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}

	// 256 bits alcanzan para que el producto y la suma sean exactos.
	f := new(big.Float).SetPrec(256).SetFloat64(x)
	f.Mul(f, big.NewFloat(1e4))
	if f.Sign() < 0 {
		f.Sub(f, big.NewFloat(0.5))
	} else {
		f.Add(f, big.NewFloat(0.5))
	}
	n, _ := f.Int(nil) // trunca hacia cero

	r, err := strconv.ParseFloat(n.String()+"e-4", 64)
	if err != nil {
		return math.Round(x*1e4) / 1e4
	}
	return r
}
