package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"    // back-office completo, entradas de apertura
	RoleOperator = "operator" // captura de ventas y movimientos
)

// User representa un usuario del sistema (operador de pantalla o admin).
// La identidad de sesión se pasa explícita a cada caso de uso; nunca hay
// lookup ambiental de "usuario actual" dentro de la lógica pura.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operator
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
