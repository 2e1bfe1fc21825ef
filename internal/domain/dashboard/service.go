package dashboard

import (
	"context"
	"fmt"
	"time"

	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"
	"vetcalc/internal/platform/logger"
)

type Service struct {
	calcs *history.Service
	vaccs *vaccines.Service
	app   string
	log   logger.Logger
	now   func() time.Time
}

// NewService recibe el identificador que va en el campo "app" del export ("VetCalc v1.0").
func NewService(calcs *history.Service, vaccs *vaccines.Service, app string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		calcs: calcs,
		vaccs: vaccs,
		app:   app,
		log:   log.With(map[string]any{"component": "dashboard"}),
		now:   time.Now,
	}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	calcs, err := s.calcs.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	st, err := s.vaccs.Stats(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TotalTreatments:  len(calcs),
		TotalVaccines:    st.Total,
		UpcomingVaccines: st.Upcoming,
	}, nil
}

// Export arma el documento completo. Los rankings van sin recortar.
func (s *Service) Export(ctx context.Context) (Export, error) {
	calcs, err := s.calcs.List(ctx)
	if err != nil {
		return Export{}, err
	}
	vaccs, err := s.vaccs.Records(ctx)
	if err != nil {
		return Export{}, err
	}

	return Export{
		ExportDate:   s.now().UTC(),
		App:          s.app,
		Calculations: calcs,
		Vaccines:     vaccs,
		Statistics: ExportStatistics{
			Calculations: history.Summarize(calcs, 0),
			Vaccines:     vaccines.SummarizeStatistics(vaccs, s.vaccs.Today()),
		},
	}, nil
}

// Import reemplaza ambas listas por las del documento. Valida las dos antes de
// escribir, así un documento inválido no deja una lista a medio importar.
// Statistics se ignora: se recalcula al leer.
func (s *Service) Import(ctx context.Context, doc Export) error {
	if err := history.ValidateRecords(doc.Calculations); err != nil {
		return fmt.Errorf("calculations: %w", err)
	}
	if err := vaccines.ValidateRecords(doc.Vaccines); err != nil {
		return fmt.Errorf("vaccines: %w", err)
	}

	if err := s.calcs.ReplaceAll(ctx, doc.Calculations); err != nil {
		return err
	}
	if err := s.vaccs.ReplaceAll(ctx, doc.Vaccines); err != nil {
		return err
	}

	s.log.Info("data imported", map[string]any{
		"calculations": len(doc.Calculations),
		"vaccines":     len(doc.Vaccines),
		"source_app":   doc.App,
	})
	return nil
}

// ClearAll borra historial y vacunas.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.calcs.Clear(ctx); err != nil {
		return err
	}
	if err := s.vaccs.Clear(ctx); err != nil {
		return err
	}
	s.log.Warn("all data cleared", nil)
	return nil
}

// ExportFilename => VetCalc_Export_2025-06-01.json
func ExportFilename(exportDate time.Time) string {
	return fmt.Sprintf("VetCalc_Export_%s.json", exportDate.UTC().Format("2006-01-02"))
}
