package drugs

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, calc *Calculator, m *metrics.Collector) {
	r.Route("/drugs", func(dr chi.Router) {
		dr.Get("/", listDrugsHandler(calc.Registry()))
		dr.Get("/{drugID}", getDrugHandler(calc.Registry()))
	})

	r.Route("/doses", func(dr chi.Router) {
		dr.Post("/", calculateDoseHandler(calc, m))
		dr.Post("/validate", validateDoseHandler(calc))
	})
}

// DoseRequest es el cuerpo común de cálculo y validación.
type DoseRequest struct {
	DrugID  string  `json:"drug_id"`
	Species string  `json:"species"`
	Weight  float64 `json:"weight"`
}

type ruleResponse struct {
	Species   species.Species `json:"species"`
	Allowed   bool            `json:"allowed"`
	DosePerKg *float64        `json:"dose_per_kg,omitempty"`
	MinWeight *float64        `json:"min_weight,omitempty"`
	MaxWeight *float64        `json:"max_weight,omitempty"`
	Reason    string          `json:"reason,omitempty"`
}

type drugResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Presentation  string         `json:"presentation"`
	Route         string         `json:"route"`
	Frequency     string         `json:"frequency"`
	Unit          string         `json:"unit"`
	Concentration float64        `json:"concentration"`
	Warnings      string         `json:"warnings"`
	Rules         []ruleResponse `json:"rules"`
}

type doseResponse struct {
	DoseResult
	TotalDoseText string `json:"total_dose_text"`
}

type validationResponse struct {
	Valid   bool      `json:"valid"`
	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"message"`
}

// ErrorResponse es el cuerpo de error de los endpoints de dosis.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Reason    string   `json:"reason,omitempty"`
	MinWeight *float64 `json:"min_weight,omitempty"`
	MaxWeight *float64 `json:"max_weight,omitempty"`
}

// listDrugsHandler godoc
// @Summary Listar medicamentos
// @Description Lista el vademécum en orden de catálogo. Con `species`, solo los permitidos para esa especie.
// @Tags drugs
// @Produce json
// @Param species query string false "Especie (perro, gato, oveja, conejo, aves)"
// @Success 200 {array} drugResponse
// @Router /drugs [get]
func listDrugsHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entries []Entry
		if v := strings.TrimSpace(r.URL.Query().Get("species")); v != "" {
			entries = reg.ListForSpecies(species.Parse(v))
		} else {
			entries = reg.List()
		}

		out := make([]drugResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, toDrugResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDrugHandler godoc
// @Summary Ficha de medicamento
// @Tags drugs
// @Produce json
// @Param drugID path string true "ID del medicamento"
// @Success 200 {object} drugResponse
// @Failure 404 {object} ErrorResponse
// @Router /drugs/{drugID} [get]
func getDrugHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "drugID")
		spec, ok := reg.Lookup(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Error:   string(KindDrugNotFound),
				Message: "Medicamento no encontrado",
			})
			return
		}
		writeJSON(w, http.StatusOK, toDrugResponse(Entry{ID: id, Spec: spec}))
	}
}

// calculateDoseHandler godoc
// @Summary Calcular dosis
// @Description Calcula la dosis total = peso × dosis/kg, redondeada a 4 decimales. No guarda nada (ver POST /calculations).
// @Tags doses
// @Accept json
// @Produce json
// @Param payload body DoseRequest true "Medicamento, especie y peso (kg)"
// @Success 200 {object} doseResponse
// @Failure 400 {object} ErrorResponse "invalid json / invalid_weight"
// @Failure 404 {object} ErrorResponse "drug_not_found"
// @Failure 422 {object} ErrorResponse "species_not_configured / species_not_allowed / weight_out_of_range"
// @Router /doses [post]
func calculateDoseHandler(calc *Calculator, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_json", Message: "invalid json"})
			return
		}

		res, err := calc.Calculate(strings.TrimSpace(req.DrugID), species.Parse(req.Species), req.Weight)
		if err != nil {
			WriteDoseError(w, err, m)
			return
		}

		m.DoseCalculated(res.DrugID, string(res.Species))
		writeJSON(w, http.StatusOK, doseResponse{DoseResult: res, TotalDoseText: res.TotalDoseText()})
	}
}

// validateDoseHandler godoc
// @Summary Validar uso
// @Description Misma cadena de reglas que el cálculo; devuelve un veredicto legible. Siempre 200 salvo JSON inválido.
// @Tags doses
// @Accept json
// @Produce json
// @Param payload body DoseRequest true "Medicamento, especie y peso (kg)"
// @Success 200 {object} validationResponse
// @Failure 400 {object} ErrorResponse
// @Router /doses/validate [post]
func validateDoseHandler(calc *Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_json", Message: "invalid json"})
			return
		}

		v := calc.Validate(strings.TrimSpace(req.DrugID), species.Parse(req.Species), req.Weight)
		writeJSON(w, http.StatusOK, validationResponse{Valid: v.Valid, Kind: v.Kind, Message: v.Message})
	}
}

// WriteDoseError traduce un error del calculador a HTTP. Lo reutiliza history.
func WriteDoseError(w http.ResponseWriter, err error, m *metrics.Collector) {
	var de *DoseError
	if !errors.As(err, &de) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal", Message: "internal error"})
		return
	}

	m.DoseRejected(string(de.Kind))

	body := ErrorResponse{
		Error:   string(de.Kind),
		Message: de.Message,
		Reason:  de.Reason,
	}
	if de.Range != nil {
		minW, maxW := de.Range.Min, de.Range.Max
		body.MinWeight = &minW
		body.MaxWeight = &maxW
	}

	status := http.StatusUnprocessableEntity
	switch de.Kind {
	case KindInvalidWeight:
		status = http.StatusBadRequest
	case KindDrugNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, body)
}

func toDrugResponse(e Entry) drugResponse {
	rules := make([]ruleResponse, 0, len(e.Spec.Rules))
	// Orden fijo de especies para que la respuesta sea estable.
	for _, sp := range species.All() {
		rule, ok := e.Spec.Rule(sp)
		if !ok {
			continue
		}
		switch rr := rule.(type) {
		case Allowed:
			dose, minW, maxW := rr.DosePerKg, rr.MinWeight, rr.MaxWeight
			rules = append(rules, ruleResponse{
				Species:   sp,
				Allowed:   true,
				DosePerKg: &dose,
				MinWeight: &minW,
				MaxWeight: &maxW,
			})
		case Disallowed:
			rules = append(rules, ruleResponse{Species: sp, Allowed: false, Reason: rr.Reason})
		}
	}

	return drugResponse{
		ID:            e.ID,
		Name:          e.Spec.Name,
		Description:   e.Spec.Description,
		Presentation:  e.Spec.Presentation,
		Route:         e.Spec.Route,
		Frequency:     e.Spec.Frequency,
		Unit:          e.Spec.Unit,
		Concentration: e.Spec.Concentration,
		Warnings:      e.Spec.Warnings,
		Rules:         rules,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
