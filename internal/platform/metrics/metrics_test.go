package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector("vetcalc")

	c.DoseCalculated("meloxisan", "perro")
	c.DoseCalculated("meloxisan", "perro")
	c.DoseRejected("weight_out_of_range")
	c.HistoryEvicted(1)
	c.HistoryEvicted(0)

	if v := testutil.ToFloat64(c.DosesCalculated.WithLabelValues("meloxisan", "perro")); v != 2 {
		t.Fatalf("expected 2 doses, got %v", v)
	}
	if v := testutil.ToFloat64(c.DosesRejected.WithLabelValues("weight_out_of_range")); v != 1 {
		t.Fatalf("expected 1 rejection, got %v", v)
	}
	if v := testutil.ToFloat64(c.HistoryEvictions); v != 1 {
		t.Fatalf("expected 1 eviction, got %v", v)
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	c.DoseCalculated("x", "y")
	c.DoseRejected("k")
	c.VaccineRegistered("perro")
	c.HistoryEvicted(3)
	c.VaccineRecordsEvicted(3)
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("vetcalc")
	b := NewCollector("vetcalc")
	a.VaccineRegistered("gato")

	if v := testutil.ToFloat64(b.VaccinesRegistered.WithLabelValues("gato")); v != 0 {
		t.Fatalf("registries must not share state, got %v", v)
	}
}
