package dto

import "time"

// CreateOutletRequest entrada para crear un outlet.
type CreateOutletRequest struct {
	Code       string `json:"code" validate:"required,min=1,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Area       string `json:"area"`
	Proprietor string `json:"proprietor"`
	Phone      string `json:"phone"`
}

// OutletResponse salida de un outlet.
type OutletResponse struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Area       string    `json:"area"`
	Proprietor string    `json:"proprietor"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OutletListResponse lista de outlets.
type OutletListResponse struct {
	Items []OutletResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
