package entity

import "time"

// Outlet representa un punto de venta / distribuidor. Es la unidad de contabilidad
// de stock y de deuda (due).
type Outlet struct {
	Code       string // identificador único, usado como key en price lists
	Name       string
	Area       string
	Proprietor string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
