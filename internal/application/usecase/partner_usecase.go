package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
	"github.com/parceiroslab/cadastro-api/internal/domain/repository"
)

// PartnerUseCase aplica os casos de uso do cadastro de parceiros.
// O agregado valida; aqui ficam identidade, checagem de duplicados
// (pelas chaves normalizadas que o agregado expõe) e persistência.
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

// NewPartnerUseCase constrói o caso de uso com o porto de persistência.
func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

// Create cria um parceiro PJ ou PF conforme tipo_pessoa. Devolve
// domain.ErrDuplicate se já existir parceiro com o mesmo documento ou email.
func (uc *PartnerUseCase) Create(in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	input := entity.PartnerInput{
		Name:  in.Nome,
		Email: in.Email,
		Address: entity.AddressInput{
			CEP:        in.CEP,
			UF:         in.UF,
			City:       in.Cidade,
			Street:     in.Logradouro,
			Number:     in.Numero,
			District:   in.Bairro,
			Complement: in.Complemento,
		},
		Phone: in.Telefone,
		Notes: in.Observacoes,
	}

	var (
		partner *entity.Partner
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(in.TipoPessoa)) {
	case entity.PersonTypeLegal:
		input.Document = in.CNPJ
		partner, err = entity.NewLegalPerson(input)
	case entity.PersonTypeNatural:
		input.Document = in.CPF
		partner, err = entity.NewNaturalPerson(input)
	default:
		return nil, domain.NewFieldError("tipo_pessoa", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	// Pré-checagem de duplicados pelas chaves normalizadas; o índice único do
	// banco continua sendo a garantia final (corrida entre requisições).
	if existing, _ := uc.repo.GetByDocument(partner.Document().String()); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByEmail(partner.Email().String()); existing != nil {
		return nil, domain.ErrDuplicate
	}

	partner.AssignID(uuid.New().String())
	if err := uc.repo.Create(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// GetByID busca um parceiro. Devolve domain.ErrNotFound se não existir.
func (uc *PartnerUseCase) GetByID(id string) (*dto.PartnerResponse, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return toPartnerResponse(partner), nil
}

// List lista parceiros com paginação.
func (uc *PartnerUseCase) List(page dto.PageRequest) ([]*dto.PartnerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPartnerResponse(p))
	}
	return out, nil
}

// UpdateEmail revalida e troca o email do parceiro.
func (uc *PartnerUseCase) UpdateEmail(id string, in dto.UpdatePartnerEmailRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.loadPartner(id)
	if err != nil {
		return nil, err
	}
	if err := partner.UpdateEmail(in.Email); err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetByEmail(partner.Email().String()); existing != nil && existing.ID() != partner.ID() {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// UpdatePhone troca o telefone do parceiro.
func (uc *PartnerUseCase) UpdatePhone(id string, in dto.UpdatePartnerPhoneRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.loadPartner(id)
	if err != nil {
		return nil, err
	}
	if err := partner.UpdatePhone(in.Telefone); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// UpdateAddress revalida e troca o endereço completo do parceiro.
func (uc *PartnerUseCase) UpdateAddress(id string, in dto.UpdatePartnerAddressRequest) (*dto.PartnerResponse, error) {
	partner, err := uc.loadPartner(id)
	if err != nil {
		return nil, err
	}
	err = partner.UpdateAddress(entity.AddressInput{
		CEP:        in.CEP,
		UF:         in.UF,
		City:       in.Cidade,
		Street:     in.Logradouro,
		Number:     in.Numero,
		District:   in.Bairro,
		Complement: in.Complemento,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(partner); err != nil {
		return nil, err
	}
	return toPartnerResponse(partner), nil
}

// Delete remove um parceiro. Devolve domain.ErrNotFound se não existir.
func (uc *PartnerUseCase) Delete(id string) error {
	if _, err := uc.loadPartner(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *PartnerUseCase) loadPartner(id string) (*entity.Partner, error) {
	partner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return partner, nil
}

func toPartnerResponse(p *entity.Partner) *dto.PartnerResponse {
	addr := p.Address()
	return &dto.PartnerResponse{
		ID:                 p.ID(),
		TipoPessoa:         p.PersonType(),
		TipoPessoaRotulo:   p.PersonTypeLabel(),
		Nome:               p.Name(),
		Documento:          p.Document().String(),
		DocumentoFormatado: p.FormattedDocument(),
		Email:              p.Email().String(),
		EmailCorporativo:   p.HasCorporateEmail(),
		CEP:                addr.CEP,
		UF:                 addr.UF,
		Cidade:             addr.City,
		Logradouro:         addr.Street,
		Numero:             addr.Number,
		Bairro:             addr.District,
		Complemento:        addr.Complement,
		Telefone:           p.Phone(),
		Observacoes:        p.Notes(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}
