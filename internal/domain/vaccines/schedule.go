package vaccines

import "vetcalc/internal/platform/caldate"

// UpcomingWindowDays: con 0..14 días restantes la vacuna está "próxima".
const UpcomingWindowDays = 14

// NextDueDate suma el intervalo en días de calendario.
func NextDueDate(administered caldate.Date, intervalDays int) caldate.Date {
	return administered.AddDays(intervalDays)
}

// ClassifyStatus compara fechas de calendario:
// <0 vencida, 0..14 próxima (ambos extremos), >14 vigente.
func ClassifyStatus(nextDue, asOf caldate.Date) Status {
	return statusFor(asOf.DaysUntil(nextDue))
}

func statusFor(daysUntil int) Status {
	switch {
	case daysUntil < 0:
		return StatusExpired
	case daysUntil <= UpcomingWindowDays:
		return StatusUpcoming
	default:
		return StatusCurrent
	}
}

// View anota el registro con su estado a la fecha asOf.
func View(r Record, asOf caldate.Date) RecordView {
	days := asOf.DaysUntil(r.NextDueDate)
	st := statusFor(days)
	return RecordView{Record: r, Status: st, StatusLabel: st.Label(), DaysUntil: days}
}

// SummarizeStatistics cuenta los registros por estado; los tres suman Total.
func SummarizeStatistics(records []Record, asOf caldate.Date) Statistics {
	st := Statistics{Total: len(records)}
	for _, r := range records {
		switch ClassifyStatus(r.NextDueDate, asOf) {
		case StatusExpired:
			st.Expired++
		case StatusUpcoming:
			st.Upcoming++
		default:
			st.Current++
		}
	}
	return st
}
