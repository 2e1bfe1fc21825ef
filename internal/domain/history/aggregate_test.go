package history

import (
	"testing"

	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/species"
)

func recs(names ...string) []Record {
	out := make([]Record, 0, len(names))
	for _, n := range names {
		out = append(out, Record{DoseResult: drugs.DoseResult{Drug: n, Species: species.Perro}})
	}
	return out
}

func TestAggregateDrugUsage_TopTwo(t *testing.T) {
	got := TopN(AggregateDrugUsage(recs("A", "A", "B", "C", "A", "B")), 2)

	want := []UsageCount{{Name: "A", Count: 3}, {Name: "B", Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
}

func TestAggregateDrugUsage_TiesKeepFirstSeen(t *testing.T) {
	got := AggregateDrugUsage(recs("C", "B", "A", "B", "C", "A", "D"))

	order := []string{"C", "B", "A", "D"}
	for i, name := range order {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s (%#v)", i, name, got[i].Name, got)
		}
	}
}

func TestTopN_Edges(t *testing.T) {
	all := AggregateDrugUsage(recs("A", "B"))

	if len(TopN(all, 0)) != 2 || len(TopN(all, 10)) != 2 {
		t.Fatalf("n <= 0 or n > len must return everything")
	}
	if len(AggregateDrugUsage(nil)) != 0 {
		t.Fatalf("empty history must give empty usage")
	}
}

func TestSummarize_CountsSpecies(t *testing.T) {
	records := []Record{
		{DoseResult: drugs.DoseResult{Drug: "X", Species: species.Gato}},
		{DoseResult: drugs.DoseResult{Drug: "X", Species: species.Perro}},
		{DoseResult: drugs.DoseResult{Drug: "Y", Species: species.Perro}},
	}

	st := Summarize(records, 5)
	if st.TotalCalculations != 3 {
		t.Fatalf("expected 3 calculations, got %d", st.TotalCalculations)
	}
	if st.SpeciesUsage[0] != (UsageCount{Name: "perro", Count: 2}) {
		t.Fatalf("unexpected species usage %#v", st.SpeciesUsage)
	}
	if st.DrugUsage[0] != (UsageCount{Name: "X", Count: 2}) {
		t.Fatalf("unexpected drug usage %#v", st.DrugUsage)
	}
}
