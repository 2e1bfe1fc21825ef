package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetcalc/internal/platform/metrics"
	"vetcalc/internal/router"
)

func TestHTTP_EndToEnd_CalculationsAndVaccines(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Metrics: metrics.NewCollector("vetcalc")}))
	defer ts.Close()

	// 1) Medicamentos para aves: solo los permitidos, en orden de catálogo
	{
		st, body := doReq(t, ts.URL, "GET", "/drugs?species=aves", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list drugs, got %d body=%s", st, string(body))
		}
		var list []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 5 || list[0].ID != "catosal" {
			t.Fatalf("unexpected drugs for aves: %s", string(body))
		}
	}

	// 2) Cálculo sin guardar
	{
		st, body := doReq(t, ts.URL, "POST", "/doses", map[string]any{
			"drug_id": "meloxisan", "species": "perro", "weight": 20,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 dose, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalDoseText string `json:"total_dose_text"`
			Unit          string `json:"unit"`
			Route         string `json:"route"`
			Frequency     string `json:"frequency"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.TotalDoseText != "2.0000" || resp.Unit != "mL" || resp.Route != "IM/IV" || resp.Frequency != "C/24h" {
			t.Fatalf("unexpected dose %s", string(body))
		}
	}

	// 3) Errores del calculador con su status y cuerpo
	{
		st, body := doReq(t, ts.URL, "POST", "/doses", map[string]any{
			"drug_id": "pen-duo-strep", "species": "aves", "weight": 1,
		})
		if st != http.StatusUnprocessableEntity || !strings.Contains(string(body), "species_not_configured") {
			t.Fatalf("expected 422 species_not_configured, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/doses", map[string]any{
			"drug_id": "meloxisan", "species": "perro", "weight": 120,
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 out of range, got %d", st)
		}
		var errResp struct {
			Error     string   `json:"error"`
			MinWeight *float64 `json:"min_weight"`
			MaxWeight *float64 `json:"max_weight"`
		}
		_ = json.Unmarshal(body, &errResp)
		if errResp.Error != "weight_out_of_range" || errResp.MinWeight == nil || *errResp.MaxWeight != 100 {
			t.Fatalf("unexpected error body %s", string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/doses", map[string]any{
			"drug_id": "nope", "species": "perro", "weight": 10,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown drug, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/doses", map[string]any{
			"drug_id": "meloxisan", "species": "perro", "weight": -2,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid weight, got %d", st)
		}
	}

	// 4) Validación legible
	{
		st, body := doReq(t, ts.URL, "POST", "/doses/validate", map[string]any{
			"drug_id": "meloxisan", "species": "perro", "weight": 3,
		})
		if st != http.StatusOK || !strings.Contains(string(body), "Animal muy ligero. Mínimo: 5 kg") {
			t.Fatalf("unexpected validation %d body=%s", st, string(body))
		}
	}

	// 5) Calcular y guardar en historial
	saveCalculation(t, ts.URL, "meloxisan", "perro", 20)
	saveCalculation(t, ts.URL, "catosal", "gato", 4)
	saveCalculation(t, ts.URL, "meloxisan", "perro", 10)
	{
		st, body := doReq(t, ts.URL, "GET", "/calculations/stats?top=1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 stats, got %d", st)
		}
		var stats struct {
			Total     int `json:"total_calculations"`
			DrugUsage []struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			} `json:"drug_usage"`
		}
		_ = json.Unmarshal(body, &stats)
		if stats.Total != 3 || len(stats.DrugUsage) != 1 || stats.DrugUsage[0].Count != 2 {
			t.Fatalf("unexpected calculation stats %s", string(body))
		}
	}

	// 6) Registrar vacuna (ejemplo rabia 730 días)
	vaccineID := registerVaccine(t, ts.URL, map[string]any{
		"species": "perro", "vaccine_id": "rabia-perro", "date": "2024-01-10",
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/vaccines/"+vaccineID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"next_due_date":"2026-01-09"`) {
			t.Fatalf("unexpected vaccine record %d body=%s", st, string(body))
		}
	}

	// 7) Editar => id nuevo, el viejo desaparece
	{
		st, body := doReq(t, ts.URL, "PUT", "/vaccines/"+vaccineID, map[string]any{
			"species": "perro", "vaccine_id": "moquillo-perro",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 edit, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/vaccines/"+vaccineID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for replaced record, got %d", st)
		}
	}

	// 8) Vacuna inexistente para la especie
	{
		st, _ := doReq(t, ts.URL, "POST", "/vaccines", map[string]any{
			"species": "gato", "vaccine_id": "rabia-perro",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 vaccine not found, got %d", st)
		}
	}

	// 9) Resumen del panel
	{
		st, body := doReq(t, ts.URL, "GET", "/stats/summary", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d", st)
		}
		var sum struct {
			TotalTreatments int `json:"totalTreatments"`
			TotalVaccines   int `json:"totalVaccines"`
		}
		_ = json.Unmarshal(body, &sum)
		if sum.TotalTreatments != 3 || sum.TotalVaccines != 1 {
			t.Fatalf("unexpected summary %s", string(body))
		}
	}

	// 10) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "vetcalc_dosage_doses_calculated_total") {
			t.Fatalf("expected dose metrics, got %d", st)
		}
	}
}

func TestHTTP_ExportImportAndClear(t *testing.T) {
	src := httptest.NewServer(router.NewRouter(router.Options{}))
	defer src.Close()

	saveCalculation(t, src.URL, "bio-c", "oveja", 40)
	registerVaccine(t, src.URL, map[string]any{"species": "aves", "vaccine_id": "newcastle"})

	res, err := http.Get(src.URL + "/export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	exported, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 export, got %d", res.StatusCode)
	}
	if cd := res.Header.Get("Content-Disposition"); !strings.Contains(cd, "VetCalc_Export_") {
		t.Fatalf("expected attachment filename, got %q", cd)
	}

	dst := httptest.NewServer(router.NewRouter(router.Options{}))
	defer dst.Close()

	var doc map[string]any
	if err := json.Unmarshal(exported, &doc); err != nil {
		t.Fatalf("export is not json: %v", err)
	}
	if doc["app"] != "VetCalc v1.0" {
		t.Fatalf("unexpected app tag %v", doc["app"])
	}

	st, body := doReq(t, dst.URL, "POST", "/import", doc)
	if st != http.StatusOK || !strings.Contains(string(body), `"totalTreatments":1`) {
		t.Fatalf("unexpected import response %d body=%s", st, string(body))
	}

	st, _ = doReq(t, dst.URL, "DELETE", "/data", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 clear, got %d", st)
	}
	_, body = doReq(t, dst.URL, "GET", "/stats/summary", nil)
	if !strings.Contains(string(body), `"totalTreatments":0`) {
		t.Fatalf("expected empty summary after clear, got %s", string(body))
	}
}

func TestHTTP_VaccineDueDatePastYear9999KeepsListReadable(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/vaccines", map[string]any{
		"species": "perro", "vaccine_id": "rabia-perro", "date": "9999-06-01",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for due date past 9999, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/vaccines", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
	}

	// la lista sigue aceptando registros normales
	registerVaccine(t, ts.URL, map[string]any{
		"species": "perro", "vaccine_id": "rabia-perro", "date": "2024-01-10",
	})
	st, body = doReq(t, ts.URL, "GET", "/vaccines", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"next_due_date":"2026-01-09"`) {
		t.Fatalf("unexpected list %d body=%s", st, string(body))
	}
}

func saveCalculation(t *testing.T, baseURL, drugID, species string, weight float64) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/calculations", map[string]any{
		"drug_id": drugID, "species": species, "weight": weight,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 save calculation, got %d body=%s", st, string(body))
	}
}

func registerVaccine(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/vaccines", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register vaccine, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("register vaccine: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
