package dashboard

import (
	"time"

	"vetcalc/internal/domain/history"
	"vetcalc/internal/domain/vaccines"
)

// Summary son los contadores del panel.
type Summary struct {
	TotalTreatments  int `json:"totalTreatments"`
	TotalVaccines    int `json:"totalVaccines"`
	UpcomingVaccines int `json:"upcomingVaccines"`
}

// Export es el documento de exportación. Formato estable: las claves de primer
// nivel no cambian y un import del mismo documento reconstruye ambas listas.
type Export struct {
	ExportDate   time.Time         `json:"exportDate"`
	App          string            `json:"app"`
	Calculations []history.Record  `json:"calculations"`
	Vaccines     []vaccines.Record `json:"vaccines"`
	Statistics   ExportStatistics  `json:"statistics"`
}

type ExportStatistics struct {
	Calculations history.Statistics  `json:"calculations"`
	Vaccines     vaccines.Statistics `json:"vaccines"`
}
