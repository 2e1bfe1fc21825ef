package vaccines

import (
	"time"

	"vetcalc/internal/domain/species"
	"vetcalc/internal/platform/caldate"
)

// CatalogEntry es una vacuna disponible para una especie.
type CatalogEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IntervalDays int    `json:"interval_days"`
	Description  string `json:"description"`
}

// Record es una aplicación registrada. No se modifica nunca:
// editar = borrar + volver a registrar.
type Record struct {
	ID                 string          `json:"id"`
	Species            species.Species `json:"species"`
	VaccineID          string          `json:"vaccine_id"`
	VaccineName        string          `json:"vaccine_name"`
	AdministrationDate caldate.Date    `json:"administration_date"`
	NextDueDate        caldate.Date    `json:"next_due_date"`
	IntervalDays       int             `json:"interval_days"`
	CreatedAt          time.Time       `json:"created_at"`
}

type Status string

const (
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
)

// Label es el texto que se muestra en la tarjeta.
func (s Status) Label() string {
	switch s {
	case StatusUpcoming:
		return "Próxima"
	case StatusExpired:
		return "Vencida"
	default:
		return "Vigente"
	}
}

// RecordView es un registro con su estado calculado a la fecha de lectura.
// El estado no se persiste.
type RecordView struct {
	Record
	Status      Status `json:"status"`
	StatusLabel string `json:"status_label"`
	DaysUntil   int    `json:"days_until"`
}

type Statistics struct {
	Total    int `json:"total"`
	Current  int `json:"current"`
	Upcoming int `json:"upcoming"`
	Expired  int `json:"expired"`
}
