package vaccines

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/caldate"
	"vetcalc/internal/platform/metrics"
)

// MaxRecords es el tope de la lista; al pasarlo se descarta el más viejo.
const MaxRecords = 200

type Service struct {
	repo    Repository
	catalog *Catalog
	metrics *metrics.Collector
	now     func() time.Time
}

func NewService(repo Repository, catalog *Catalog, m *metrics.Collector) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		metrics: m,
		now:     time.Now,
	}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Today es la fecha de calendario actual en la zona del reloj.
func (s *Service) Today() caldate.Date {
	return caldate.Of(s.now())
}

type RegisterInput struct {
	Species   string
	VaccineID string
	// Vacío = hoy.
	Date caldate.Date
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Record, error) {
	rec, err := s.build(in)
	if err != nil {
		return Record{}, err
	}

	evicted := 0
	err = s.repo.Update(ctx, func(cur []Record) ([]Record, error) {
		var next []Record
		next, evicted = prepend(cur, rec)
		return next, nil
	})
	if err != nil {
		return Record{}, err
	}

	s.metrics.VaccineRegistered(string(rec.Species))
	s.metrics.VaccineRecordsEvicted(evicted)
	return rec, nil
}

// Edit reemplaza el registro id por uno nuevo (id nuevo, al frente de la lista)
// en una sola actualización.
func (s *Service) Edit(ctx context.Context, id string, in RegisterInput) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	rec, err := s.build(in)
	if err != nil {
		return Record{}, err
	}

	err = s.repo.Update(ctx, func(cur []Record) ([]Record, error) {
		rest, ok := without(cur, id)
		if !ok {
			return nil, ErrNotFound
		}
		next, _ := prepend(rest, rec)
		return next, nil
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Update(ctx, func(cur []Record) ([]Record, error) {
		rest, ok := without(cur, id)
		if !ok {
			return nil, ErrNotFound
		}
		return rest, nil
	})
}

// List devuelve los registros (más nuevo primero) con el estado a hoy.
func (s *Service) List(ctx context.Context) ([]RecordView, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.Today()
	out := make([]RecordView, 0, len(recs))
	for _, r := range recs {
		out = append(out, View(r, today))
	}
	return out, nil
}

func (s *Service) Records(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (RecordView, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return RecordView{}, err
	}
	for _, r := range recs {
		if r.ID == id {
			return View(r, s.Today()), nil
		}
	}
	return RecordView{}, ErrNotFound
}

func (s *Service) Stats(ctx context.Context) (Statistics, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return SummarizeStatistics(recs, s.Today()), nil
}

// Due lista los registros que vencen dentro de `within` días (incluye vencidos),
// ordenados por fecha de vencimiento.
func (s *Service) Due(ctx context.Context, within int) ([]RecordView, error) {
	if within < 0 {
		return nil, ErrInvalidInput
	}
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RecordView, 0)
	for _, v := range all {
		if v.DaysUntil <= within {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextDueDate.Before(out[j].NextDueDate)
	})
	return out, nil
}

// ValidateRecords chequea una lista importada: tope, ids y fechas presentes.
func ValidateRecords(recs []Record) error {
	if len(recs) > MaxRecords {
		return ErrTooManyRecords
	}
	for _, r := range recs {
		if strings.TrimSpace(r.ID) == "" || r.AdministrationDate.IsZero() || r.NextDueDate.IsZero() {
			return ErrInvalidInput
		}
	}
	return nil
}

// ReplaceAll pisa la lista completa (import). Respeta el orden recibido.
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

func (s *Service) build(in RegisterInput) (Record, error) {
	sp := species.Parse(in.Species)
	vid := strings.TrimSpace(in.VaccineID)
	if sp == "" || vid == "" {
		return Record{}, ErrInvalidInput
	}

	date := in.Date
	if date.IsZero() {
		date = s.Today()
	}

	rec, err := s.catalog.Register(sp, vid, date)
	if err != nil {
		return Record{}, err
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = s.now().UTC()
	return rec, nil
}

// prepend agrega al frente y recorta al tope. Devuelve cuántos se descartaron.
func prepend(cur []Record, rec Record) ([]Record, int) {
	next := make([]Record, 0, len(cur)+1)
	next = append(next, rec)
	next = append(next, cur...)
	if len(next) <= MaxRecords {
		return next, 0
	}
	return next[:MaxRecords], len(next) - MaxRecords
}

func without(cur []Record, id string) ([]Record, bool) {
	out := make([]Record, 0, len(cur))
	found := false
	for _, r := range cur {
		if r.ID == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	return out, found
}
