package history

import (
	"time"

	"vetcalc/internal/domain/drugs"
)

// Record es un cálculo guardado: el resultado completo más id y fecha.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	drugs.DoseResult
}

// UsageCount es una fila del ranking (medicamento o especie).
type UsageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Statistics struct {
	TotalCalculations int          `json:"total_calculations"`
	DrugUsage         []UsageCount `json:"drug_usage"`
	SpeciesUsage      []UsageCount `json:"species_usage"`
}
