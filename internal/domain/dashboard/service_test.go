package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vetcalc/internal/adapters/storage/kvrepo"
	"vetcalc/internal/adapters/storage/memory"
	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/species"
	"vetcalc/internal/domain/vaccines"
	"vetcalc/internal/platform/caldate"
)

func newTestService(t *testing.T) (*Service, *history.Service, *vaccines.Service) {
	t.Helper()
	store := memory.NewKVStore()

	calcs := history.NewService(kvrepo.NewHistoryRepo(store), drugs.NewCalculator(drugs.DefaultRegistry()), nil)
	vaccs := vaccines.NewService(kvrepo.NewVaccineRepo(store), vaccines.DefaultCatalog(), nil)
	svc := NewService(calcs, vaccs, "VetCalc v1.0", nil)
	return svc, calcs, vaccs
}

func seed(t *testing.T, calcs *history.Service, vaccs *vaccines.Service) {
	t.Helper()
	ctx := context.Background()

	for _, c := range []struct {
		drug string
		sp   species.Species
		w    float64
	}{
		{"meloxisan", species.Perro, 20},
		{"catosal", species.Gato, 4},
		{"meloxisan", species.Perro, 12},
	} {
		if _, err := calcs.Record(ctx, c.drug, c.sp, c.w); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	today := vaccs.Today()
	// vence en 5 días => próxima
	if _, err := vaccs.Register(ctx, vaccines.RegisterInput{Species: "perro", VaccineID: "moquillo-perro", Date: today.AddDays(5 - 365)}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := vaccs.Register(ctx, vaccines.RegisterInput{Species: "gato", VaccineID: "rabia-gato"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
}

func TestService_Summary(t *testing.T) {
	svc, calcs, vaccs := newTestService(t)
	seed(t, calcs, vaccs)

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sum != (Summary{TotalTreatments: 3, TotalVaccines: 2, UpcomingVaccines: 1}) {
		t.Fatalf("unexpected summary %#v", sum)
	}
}

func TestService_Export_Format(t *testing.T) {
	svc, calcs, vaccs := newTestService(t)
	seed(t, calcs, vaccs)
	now := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	doc, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if doc.App != "VetCalc v1.0" || !doc.ExportDate.Equal(now) {
		t.Fatalf("unexpected header %q %s", doc.App, doc.ExportDate)
	}
	if doc.Statistics.Calculations.TotalCalculations != 3 {
		t.Fatalf("unexpected calculation stats %#v", doc.Statistics.Calculations)
	}
	if doc.Statistics.Calculations.DrugUsage[0] != (history.UsageCount{Name: "Meloxisan Pets 50mL", Count: 2}) {
		t.Fatalf("unexpected drug usage %#v", doc.Statistics.Calculations.DrugUsage)
	}
	if doc.Statistics.Vaccines.Total != 2 {
		t.Fatalf("unexpected vaccine stats %#v", doc.Statistics.Vaccines)
	}

	raw, _ := json.Marshal(doc)
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, k := range []string{"exportDate", "app", "calculations", "vaccines", "statistics"} {
		if _, ok := top[k]; !ok {
			t.Fatalf("missing top-level key %q", k)
		}
	}

	if ExportFilename(now) != "VetCalc_Export_2025-06-01.json" {
		t.Fatalf("unexpected filename %s", ExportFilename(now))
	}
}

func TestService_ExportImport_RoundTrip(t *testing.T) {
	src, calcs, vaccs := newTestService(t)
	seed(t, calcs, vaccs)
	ctx := context.Background()

	doc, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	dst, dstCalcs, dstVaccs := newTestService(t)
	// datos previos en destino: el import los reemplaza
	if _, err := dstCalcs.Record(ctx, "bio-c", species.Oveja, 50); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	var in Export
	if err := json.Unmarshal(raw, &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := dst.Import(ctx, in); err != nil {
		t.Fatalf("Import error: %v", err)
	}

	gotCalcs, _ := dstCalcs.List(ctx)
	gotVaccs, _ := dstVaccs.Records(ctx)
	wantCalcs, _ := calcs.List(ctx)
	wantVaccs, _ := vaccs.Records(ctx)

	if len(gotCalcs) != len(wantCalcs) || len(gotVaccs) != len(wantVaccs) {
		t.Fatalf("list sizes differ after import")
	}
	for i := range wantCalcs {
		if gotCalcs[i].ID != wantCalcs[i].ID || gotCalcs[i].TotalDose != wantCalcs[i].TotalDose || !gotCalcs[i].CreatedAt.Equal(wantCalcs[i].CreatedAt) {
			t.Fatalf("calculation %d differs: %#v vs %#v", i, gotCalcs[i], wantCalcs[i])
		}
	}
	for i := range wantVaccs {
		g, w := gotVaccs[i], wantVaccs[i]
		if g.ID != w.ID || !g.NextDueDate.Equal(w.NextDueDate) || !g.AdministrationDate.Equal(w.AdministrationDate) || g.VaccineID != w.VaccineID {
			t.Fatalf("vaccine %d differs: %#v vs %#v", i, g, w)
		}
	}
}

func TestService_Import_RejectsOversizedWithoutWriting(t *testing.T) {
	svc, calcs, vaccs := newTestService(t)
	seed(t, calcs, vaccs)
	ctx := context.Background()

	d := caldate.MustParse("2025-01-01")
	tooMany := make([]vaccines.Record, vaccines.MaxRecords+1)
	for i := range tooMany {
		tooMany[i] = vaccines.Record{ID: "x", AdministrationDate: d, NextDueDate: d}
	}

	err := svc.Import(ctx, Export{Calculations: nil, Vaccines: tooMany})
	if !errors.Is(err, vaccines.ErrTooManyRecords) {
		t.Fatalf("expected ErrTooManyRecords, got %v", err)
	}
	if got, _ := calcs.List(ctx); len(got) != 3 {
		t.Fatalf("history must be untouched by a rejected import, got %d", len(got))
	}
}

func TestService_ClearAll(t *testing.T) {
	svc, calcs, vaccs := newTestService(t)
	seed(t, calcs, vaccs)

	if err := svc.ClearAll(context.Background()); err != nil {
		t.Fatalf("ClearAll error: %v", err)
	}
	sum, _ := svc.Summary(context.Background())
	if sum != (Summary{}) {
		t.Fatalf("expected zero summary, got %#v", sum)
	}
}
