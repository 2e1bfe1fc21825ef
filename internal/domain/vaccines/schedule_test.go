package vaccines

import (
	"encoding/json"
	"errors"
	"testing"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/caldate"
)

func TestRegister_RabiaPerro(t *testing.T) {
	rec, err := DefaultCatalog().Register(species.Perro, "rabia-perro", caldate.MustParse("2024-01-10"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.NextDueDate.String() != "2026-01-09" {
		t.Fatalf("expected next due 2026-01-09, got %s", rec.NextDueDate)
	}
	if rec.IntervalDays != 730 || rec.VaccineName != "Rabia" {
		t.Fatalf("unexpected record %#v", rec)
	}
}

func TestRegister_UnknownVaccine(t *testing.T) {
	c := DefaultCatalog()

	// la vacuna existe, pero para otra especie
	if _, err := c.Register(species.Gato, "rabia-perro", caldate.MustParse("2024-01-10")); !errors.Is(err, ErrVaccineNotFound) {
		t.Fatalf("expected ErrVaccineNotFound, got %v", err)
	}
	if _, err := c.Register("dragon", "rabia-perro", caldate.MustParse("2024-01-10")); !errors.Is(err, ErrVaccineNotFound) {
		t.Fatalf("expected ErrVaccineNotFound for unknown species, got %v", err)
	}
}

func TestRegister_RejectsDueDatePastYear9999(t *testing.T) {
	c := DefaultCatalog()

	// 9999-06-01 + 730 días cae en el año 10001
	if _, err := c.Register(species.Perro, "rabia-perro", caldate.MustParse("9999-06-01")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// el último día que todavía entra
	rec, err := c.Register(species.Perro, "rabia-perro", caldate.MustParse("9997-12-31"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.NextDueDate.String() != "9999-12-31" {
		t.Fatalf("expected 9999-12-31, got %s", rec.NextDueDate)
	}
}

func TestNextDueDate_RollsOverYear(t *testing.T) {
	got := NextDueDate(caldate.MustParse("2024-12-20"), 365)
	if got.String() != "2025-12-20" {
		t.Fatalf("expected 2025-12-20, got %s", got)
	}
}

func TestNextDueDate_SurvivesReserialization(t *testing.T) {
	start := caldate.MustParse("2023-02-28")
	for _, n := range []int{1, 30, 365, 366, 730} {
		d := NextDueDate(start, n)

		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back caldate.Date
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !back.Equal(d) {
			t.Fatalf("n=%d: %s != %s", n, back, d)
		}
		if again, _ := caldate.Parse(d.String()); !again.Equal(d) {
			t.Fatalf("n=%d: string round trip changed the date", n)
		}
	}
}

func TestClassifyStatus_Boundaries(t *testing.T) {
	asOf := caldate.MustParse("2025-03-01")

	cases := []struct {
		days int
		want Status
	}{
		{-30, StatusExpired},
		{-1, StatusExpired},
		{0, StatusUpcoming},
		{14, StatusUpcoming},
		{15, StatusCurrent},
		{400, StatusCurrent},
	}
	for _, tc := range cases {
		if got := ClassifyStatus(asOf.AddDays(tc.days), asOf); got != tc.want {
			t.Fatalf("daysUntil=%d: expected %s, got %s", tc.days, tc.want, got)
		}
	}
}

func TestSummarizeStatistics_PartitionsAll(t *testing.T) {
	asOf := caldate.MustParse("2025-03-01")
	recs := []Record{
		{NextDueDate: asOf.AddDays(-1)},
		{NextDueDate: asOf},
		{NextDueDate: asOf.AddDays(14)},
		{NextDueDate: asOf.AddDays(15)},
		{NextDueDate: asOf.AddDays(300)},
	}

	st := SummarizeStatistics(recs, asOf)
	if st != (Statistics{Total: 5, Current: 2, Upcoming: 2, Expired: 1}) {
		t.Fatalf("unexpected stats %#v", st)
	}
	if st.Current+st.Upcoming+st.Expired != st.Total {
		t.Fatalf("counts must sum to total")
	}

	if empty := SummarizeStatistics(nil, asOf); empty != (Statistics{}) {
		t.Fatalf("expected zero stats, got %#v", empty)
	}
}

func TestCatalog_ListForSpecies(t *testing.T) {
	c := DefaultCatalog()

	got := c.ListForSpecies(species.Perro)
	want := []string{"parvovirus-perro", "moquillo-perro", "rabia-perro"}
	if len(got) != len(want) {
		t.Fatalf("expected %d vaccines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].ID)
		}
	}

	if n := len(c.ListForSpecies("dragon")); n != 0 {
		t.Fatalf("unknown species must give an empty list, got %d", n)
	}

	got[0].Name = "tampered"
	if c.ListForSpecies(species.Perro)[0].Name != "Parvovirus" {
		t.Fatalf("catalog must not be mutable from the outside")
	}
}

func TestNewCatalog_RejectsMalformed(t *testing.T) {
	cases := map[string][]CatalogEntry{
		"no id":         {{Name: "X", IntervalDays: 1}},
		"zero interval": {{ID: "x", Name: "X"}},
		"duplicate":     {{ID: "x", Name: "X", IntervalDays: 1}, {ID: "x", Name: "Y", IntervalDays: 1}},
	}
	for name, list := range cases {
		if _, err := NewCatalog(map[species.Species][]CatalogEntry{species.Perro: list}); !errors.Is(err, ErrInvalidCatalog) {
			t.Fatalf("%s: expected ErrInvalidCatalog, got %v", name, err)
		}
	}
}
