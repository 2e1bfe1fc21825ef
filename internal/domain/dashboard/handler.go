package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"

	"github.com/go-chi/chi/v5"
)

// maxImportBytes alcanza de sobra para 50 cálculos + 200 vacunas.
const maxImportBytes = 2 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/stats/summary", summaryHandler(svc))
	r.Get("/export", exportHandler(svc))
	r.Post("/import", importHandler(svc))
	r.Delete("/data", clearAllHandler(svc))
}

// summaryHandler godoc
// @Summary Contadores del panel
// @Tags dashboard
// @Produce json
// @Success 200 {object} Summary
// @Router /stats/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// exportHandler godoc
// @Summary Exportar datos
// @Description Documento JSON con ambas listas y sus estadísticas, como adjunto.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Export
// @Router /export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Export(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(doc.ExportDate)+`"`)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(doc)
	}
}

// importHandler godoc
// @Summary Importar datos
// @Description Reemplaza historial y vacunas por los del documento exportado.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param payload body Export true "Documento exportado"
// @Success 200 {object} Summary
// @Failure 400 {string} string "invalid document"
// @Failure 413 {string} string "too many records"
// @Router /import [post]
func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc Export
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBytes)).Decode(&doc); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.Import(r.Context(), doc); err != nil {
			switch {
			case errors.Is(err, history.ErrTooManyRecords), errors.Is(err, vaccines.ErrTooManyRecords):
				http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			case errors.Is(err, history.ErrInvalidInput), errors.Is(err, vaccines.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		sum, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// clearAllHandler godoc
// @Summary Borrar todos los datos
// @Tags dashboard
// @Success 204
// @Router /data [delete]
func clearAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearAll(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
