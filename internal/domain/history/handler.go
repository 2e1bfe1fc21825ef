package history

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const defaultTop = 5

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Collector) {
	r.Route("/calculations", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", recordHandler(svc, m))
		cr.Delete("/", clearHandler(svc))
		cr.Get("/stats", statsHandler(svc))
	})
}

// listHandler godoc
// @Summary Historial de cálculos
// @Description Más nuevo primero, máximo 50.
// @Tags calculations
// @Produce json
// @Success 200 {array} Record
// @Router /calculations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// recordHandler godoc
// @Summary Calcular y guardar
// @Description Calcula la dosis y la guarda en el historial. Mismos errores que POST /doses.
// @Tags calculations
// @Accept json
// @Produce json
// @Param payload body drugs.DoseRequest true "Medicamento, especie y peso (kg)"
// @Success 201 {object} Record
// @Failure 400 {object} drugs.ErrorResponse
// @Failure 404 {object} drugs.ErrorResponse
// @Failure 422 {object} drugs.ErrorResponse
// @Router /calculations [post]
func recordHandler(svc *Service, m *metrics.Collector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req drugs.DoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, drugs.ErrorResponse{Error: "invalid_json", Message: "invalid json"})
			return
		}

		rec, err := svc.Record(r.Context(), req.DrugID, species.Parse(req.Species), req.Weight)
		if err != nil {
			if _, ok := drugs.KindOf(err); ok {
				drugs.WriteDoseError(w, err, m)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		m.DoseCalculated(rec.DrugID, string(rec.Species))
		writeJSON(w, http.StatusCreated, rec)
	}
}

// clearHandler godoc
// @Summary Borrar historial
// @Tags calculations
// @Success 204
// @Router /calculations [delete]
func clearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// statsHandler godoc
// @Summary Medicamentos y especies más usados
// @Tags calculations
// @Produce json
// @Param top query int false "Tamaño del ranking (default 5, 0 = todos)"
// @Success 200 {object} Statistics
// @Router /calculations/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top := defaultTop
		if raw := strings.TrimSpace(r.URL.Query().Get("top")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "top must be a non-negative integer", http.StatusBadRequest)
				return
			}
			top = n
		}

		st, err := svc.Stats(r.Context(), top)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
