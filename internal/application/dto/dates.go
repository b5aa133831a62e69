package dto

import (
	"time"

	"github.com/tu-usuario/distribution-pos/internal/domain"
)

// Formatos de fecha aceptados en la API. Siempre parseo con layout explícito,
// nunca dependiente de locale.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	PeriodLayout   = "2006-01"
)

// ParseDate parsea "YYYY-MM-DD" o "YYYY-MM-DD HH:mm:ss" (UTC).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ParseOptionalDate igual que ParseDate pero "" devuelve nil.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// PeriodOf devuelve el período contable ("YYYY-MM") de una fecha.
func PeriodOf(t time.Time) string {
	return t.Format(PeriodLayout)
}
