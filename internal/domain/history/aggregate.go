package history

import "sort"

// AggregateDrugUsage cuenta cálculos por nombre de medicamento.
// Orden: cantidad descendente; empate = el que apareció primero en records.
func AggregateDrugUsage(records []Record) []UsageCount {
	return countBy(records, func(r Record) string { return r.Drug })
}

// AggregateSpeciesUsage igual que AggregateDrugUsage, por especie.
func AggregateSpeciesUsage(records []Record) []UsageCount {
	return countBy(records, func(r Record) string { return string(r.Species) })
}

// TopN corta el ranking a n entradas. n <= 0 devuelve todo.
func TopN(counts []UsageCount, n int) []UsageCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// Summarize arma las estadísticas del historial; top limita ambos rankings.
func Summarize(records []Record, top int) Statistics {
	return Statistics{
		TotalCalculations: len(records),
		DrugUsage:         TopN(AggregateDrugUsage(records), top),
		SpeciesUsage:      TopN(AggregateSpeciesUsage(records), top),
	}
}

func countBy(records []Record, key func(Record) string) []UsageCount {
	idx := make(map[string]int)
	out := make([]UsageCount, 0)

	for _, r := range records {
		k := key(r)
		if i, ok := idx[k]; ok {
			out[i].Count++
			continue
		}
		idx[k] = len(out)
		out = append(out, UsageCount{Name: k, Count: 1})
	}

	// out está en orden de primera aparición; el sort estable conserva ese orden en empates.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
