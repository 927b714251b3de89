package repository

import "github.com/parceiroslab/cadastro-api/internal/domain/entity"

// PartnerRepository define o porto de persistência para Partner.
// A unicidade de documento/email entre parceiros é responsabilidade do
// armazenamento; o agregado só expõe as chaves normalizadas para a busca.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	GetByDocument(document string) (*entity.Partner, error)
	GetByEmail(email string) (*entity.Partner, error)
	List(limit, offset int) ([]*entity.Partner, error)
	Update(partner *entity.Partner) error
	Delete(id string) error
}
