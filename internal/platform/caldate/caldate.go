package caldate

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Layout es el formato de fecha en el wire y en el store.
const Layout = "2006-01-02"

// Rango de años que el Layout puede escribir y volver a leer.
const (
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrOutOfRange  = errors.New("date out of range (years 1-9999)")
)

// Date es una fecha de calendario sin hora ni zona.
// Internamente se guarda como medianoche UTC, así la resta entre fechas
// siempre da un múltiplo exacto de 24h.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of toma el día de calendario de t en su propia zona.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	d := Date{t: t}
	if !d.InRange() {
		return Date{}, ErrOutOfRange
	}
	return d, nil
}

func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// InRange indica si la fecha se puede serializar con Layout y volver a leer.
func (d Date) InRange() bool {
	y := d.t.Year()
	return y >= MinYear && y <= MaxYear
}

// AddDays suma días de calendario (normaliza cambios de mes y año).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil devuelve other - d en días enteros. Va por segundos Unix y no por
// time.Duration, que satura a los ~292 años.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// MarshalJSON falla fuera de rango: un año de 5 dígitos no se podría releer.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.IsZero() && !d.InRange() {
		return nil, ErrOutOfRange
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
