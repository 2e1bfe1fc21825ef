package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"vetcalc/internal/domain/drugs"
	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/metrics"
)

// MaxRecords es el tope del historial.
const MaxRecords = 50

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrTooManyRecords = errors.New("too many calculation records")
)

type Service struct {
	repo    Repository
	calc    *drugs.Calculator
	metrics *metrics.Collector
	now     func() time.Time
}

func NewService(repo Repository, calc *drugs.Calculator, m *metrics.Collector) *Service {
	return &Service{
		repo:    repo,
		calc:    calc,
		metrics: m,
		now:     time.Now,
	}
}

// Record calcula la dosis y, si es válida, la guarda al frente del historial.
// Los errores del calculador se devuelven tal cual (*drugs.DoseError).
func (s *Service) Record(ctx context.Context, drugID string, sp species.Species, weight float64) (Record, error) {
	res, err := s.calc.Calculate(strings.TrimSpace(drugID), sp, weight)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:         uuid.NewString(),
		CreatedAt:  s.now().UTC(),
		DoseResult: res,
	}

	evicted := 0
	err = s.repo.Update(ctx, func(cur []Record) ([]Record, error) {
		next := make([]Record, 0, len(cur)+1)
		next = append(next, rec)
		next = append(next, cur...)
		if len(next) > MaxRecords {
			evicted = len(next) - MaxRecords
			next = next[:MaxRecords]
		}
		return next, nil
	})
	if err != nil {
		return Record{}, err
	}

	s.metrics.HistoryEvicted(evicted)
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) Stats(ctx context.Context, top int) (Statistics, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return Summarize(recs, top), nil
}

// ValidateRecords chequea una lista importada: tope e ids presentes.
func ValidateRecords(recs []Record) error {
	if len(recs) > MaxRecords {
		return ErrTooManyRecords
	}
	for _, r := range recs {
		if strings.TrimSpace(r.ID) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}

// ReplaceAll pisa el historial completo (import), en el orden recibido.
func (s *Service) ReplaceAll(ctx context.Context, recs []Record) error {
	if err := ValidateRecords(recs); err != nil {
		return err
	}
	cp := append([]Record(nil), recs...)
	return s.repo.Update(ctx, func([]Record) ([]Record, error) {
		return cp, nil
	})
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
