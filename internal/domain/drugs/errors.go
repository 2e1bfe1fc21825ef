package drugs

import "errors"

// ErrorKind es el identificador estable de cada error de cálculo.
type ErrorKind string

const (
	KindInvalidWeight        ErrorKind = "invalid_weight"
	KindDrugNotFound         ErrorKind = "drug_not_found"
	KindSpeciesNotConfigured ErrorKind = "species_not_configured"
	KindSpeciesNotAllowed    ErrorKind = "species_not_allowed"
	KindWeightOutOfRange     ErrorKind = "weight_out_of_range"
)

var (
	ErrInvalidWeight        = errors.New("invalid weight")
	ErrDrugNotFound         = errors.New("drug not found")
	ErrSpeciesNotConfigured = errors.New("species not configured for drug")
	ErrSpeciesNotAllowed    = errors.New("species not allowed for drug")
	ErrWeightOutOfRange     = errors.New("weight out of range")

	ErrInvalidCatalog = errors.New("invalid drug catalog")
)

var sentinels = map[ErrorKind]error{
	KindInvalidWeight:        ErrInvalidWeight,
	KindDrugNotFound:         ErrDrugNotFound,
	KindSpeciesNotConfigured: ErrSpeciesNotConfigured,
	KindSpeciesNotAllowed:    ErrSpeciesNotAllowed,
	KindWeightOutOfRange:     ErrWeightOutOfRange,
}

// DoseError lleva el tipo de error y un mensaje para el usuario.
// Unwrap devuelve el sentinel, así errors.Is(err, ErrWeightOutOfRange) funciona.
type DoseError struct {
	Kind    ErrorKind
	Message string

	Reason string       // solo species_not_allowed
	Range  *WeightRange // solo weight_out_of_range
}

func (e *DoseError) Error() string {
	return e.Message
}

func (e *DoseError) Unwrap() error {
	return sentinels[e.Kind]
}

// KindOf extrae el ErrorKind de un error devuelto por el calculador.
func KindOf(err error) (ErrorKind, bool) {
	var de *DoseError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
