package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa um usuário da API (quem opera o formulário de cadastro).
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca texto puro depois de persistido
	Name         string
	Role         string // admin, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
