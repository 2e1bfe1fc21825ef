package vaccines

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/caldate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Get("/catalog", listCatalogHandler(svc))
		vr.Get("/stats", statsHandler(svc))
		vr.Get("/due", dueHandler(svc))

		vr.Get("/", listRecordsHandler(svc))
		vr.Post("/", registerHandler(svc))
		vr.Get("/{recordID}", getRecordHandler(svc))
		vr.Put("/{recordID}", editRecordHandler(svc))
		vr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type registerRequest struct {
	Species   string `json:"species"`
	VaccineID string `json:"vaccine_id"`
	Date      string `json:"date"` // YYYY-MM-DD; vacío = hoy
}

type catalogResponse struct {
	Species  species.Species `json:"species"`
	Vaccines []CatalogEntry  `json:"vaccines"`
}

// listCatalogHandler godoc
// @Summary Vacunas por especie
// @Tags vaccines
// @Produce json
// @Param species query string true "Especie"
// @Success 200 {object} catalogResponse
// @Router /vaccines/catalog [get]
func listCatalogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp := species.Parse(r.URL.Query().Get("species"))
		writeJSON(w, http.StatusOK, catalogResponse{
			Species:  sp,
			Vaccines: svc.Catalog().ListForSpecies(sp),
		})
	}
}

// listRecordsHandler godoc
// @Summary Listar vacunas aplicadas
// @Description Más nuevo primero; cada registro trae su estado calculado a hoy.
// @Tags vaccines
// @Produce json
// @Success 200 {array} RecordView
// @Router /vaccines [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// registerHandler godoc
// @Summary Registrar vacuna
// @Tags vaccines
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Especie, vacuna y fecha de aplicación"
// @Success 201 {object} Record
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "vaccine not found"
// @Router /vaccines [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeRegister(w, r)
		if !ok {
			return
		}

		rec, err := svc.Register(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// getRecordHandler godoc
// @Summary Ver registro de vacuna
// @Tags vaccines
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} RecordView
// @Failure 404 {string} string "not found"
// @Router /vaccines/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// editRecordHandler godoc
// @Summary Editar registro de vacuna
// @Description Borra el registro y crea uno nuevo (id nuevo) en una sola operación.
// @Tags vaccines
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body registerRequest true "Datos nuevos"
// @Success 200 {object} Record
// @Failure 404 {string} string "not found"
// @Router /vaccines/{recordID} [put]
func editRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeRegister(w, r)
		if !ok {
			return
		}

		rec, err := svc.Edit(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar registro de vacuna
// @Tags vaccines
// @Param recordID path string true "ID del registro"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /vaccines/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// statsHandler godoc
// @Summary Estadísticas de vacunas
// @Tags vaccines
// @Produce json
// @Success 200 {object} Statistics
// @Router /vaccines/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// dueHandler godoc
// @Summary Vacunas a renovar
// @Description Registros que vencen dentro de `within` días (default 14), incluidos los vencidos.
// @Tags vaccines
// @Produce json
// @Param within query int false "Días"
// @Success 200 {array} RecordView
// @Router /vaccines/due [get]
func dueHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		within := UpcomingWindowDays
		if raw := strings.TrimSpace(r.URL.Query().Get("within")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "within must be a non-negative integer", http.StatusBadRequest)
				return
			}
			within = n
		}

		items, err := svc.Due(r.Context(), within)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func decodeRegister(w http.ResponseWriter, r *http.Request) (RegisterInput, bool) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return RegisterInput{}, false
	}

	var date caldate.Date
	if strings.TrimSpace(req.Date) != "" {
		d, err := caldate.Parse(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return RegisterInput{}, false
		}
		date = d
	}

	return RegisterInput{Species: req.Species, VaccineID: req.VaccineID, Date: date}, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrVaccineNotFound):
		http.Error(w, "Vacuna no encontrada", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
