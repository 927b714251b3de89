package repository

import "github.com/parceiroslab/cadastro-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (auth).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
