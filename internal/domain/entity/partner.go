package entity

import (
	"strings"
	"time"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

// Tipos de pessoa persistidos e seus rótulos de exibição.
const (
	PersonTypeLegal   = "juridica"
	PersonTypeNatural = "fisica"

	PersonTypeLegalLabel   = "Pessoa Jurídica"
	PersonTypeNaturalLabel = "Pessoa Física"
)

// Address é o endereço postal do parceiro, já normalizado
// (CEP somente dígitos, UF em maiúsculas, demais campos sem espaços nas bordas).
type Address struct {
	CEP        string
	UF         string
	City       string
	Street     string
	Number     string
	District   string
	Complement string // vazio = ausente
}

// AddressInput são os campos crus de endereço vindos do formulário.
type AddressInput struct {
	CEP        string
	UF         string
	City       string
	Street     string
	Number     string
	District   string
	Complement string
}

// PartnerInput são os campos crus de um parceiro vindos do formulário
// (ou das consultas externas ViaCEP/ReceitaWS — entrada não confiável igual).
type PartnerInput struct {
	Name     string // razão social (PJ) ou nome completo (PF)
	Document string // CNPJ ou CPF, com ou sem máscara
	Email    string
	Address  AddressInput
	Phone    string
	Notes    string // observações livres; vazio = ausente
}

// Partner é a raiz de agregado do cadastro de parceiro comercial.
// Só existe em estado válido: as factories e as mutações validam tudo antes
// de escrever qualquer campo, então nunca há instância meio-populada.
type Partner struct {
	id        string // atribuído pelo armazenamento, não pelo núcleo
	name      string
	document  valueobject.Document
	email     valueobject.Email
	address   Address
	phone     string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewLegalPerson cria um parceiro pessoa jurídica a partir do CNPJ.
// Ordem de validação: campos obrigatórios, depois CNPJ, depois email.
func NewLegalPerson(in PartnerInput) (*Partner, error) {
	if err := validateRequired(in, "razao_social"); err != nil {
		return nil, err
	}
	cnpj, err := valueobject.NewCNPJ(in.Document)
	if err != nil {
		return nil, domain.NewFieldError("cnpj", err)
	}
	return assemble(in, cnpj)
}

// NewNaturalPerson cria um parceiro pessoa física a partir do CPF.
func NewNaturalPerson(in PartnerInput) (*Partner, error) {
	if err := validateRequired(in, "nome"); err != nil {
		return nil, err
	}
	cpf, err := valueobject.NewCPF(in.Document)
	if err != nil {
		return nil, domain.NewFieldError("cpf", err)
	}
	return assemble(in, cpf)
}

// RestorePartner reidrata um parceiro vindo do armazenamento. Passa pelas
// mesmas factories dos objetos de valor: dado persistido corrompido vira erro,
// nunca agregado inválido em memória.
func RestorePartner(
	id, personType, name, document, email string,
	address Address, phone, notes string,
	createdAt, updatedAt time.Time,
) (*Partner, error) {
	var doc valueobject.Document
	switch personType {
	case PersonTypeLegal:
		cnpj, err := valueobject.NewCNPJ(document)
		if err != nil {
			return nil, domain.NewFieldError("cnpj", err)
		}
		doc = cnpj
	case PersonTypeNatural:
		cpf, err := valueobject.NewCPF(document)
		if err != nil {
			return nil, domain.NewFieldError("cpf", err)
		}
		doc = cpf
	default:
		return nil, domain.NewFieldError("tipo_pessoa", domain.ErrInvalidInput)
	}
	em, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, domain.NewFieldError("email", err)
	}
	return &Partner{
		id:        id,
		name:      name,
		document:  doc,
		email:     em,
		address:   address,
		phone:     phone,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// validateRequired confere os campos obrigatórios do formulário
// (não em branco após trim). nameField identifica o rótulo do nome:
// razão social para PJ, nome completo para PF.
func validateRequired(in PartnerInput, nameField string) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.MissingRequiredField(nameField)
	}
	if err := validateRequiredAddress(in.Address); err != nil {
		return err
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.MissingRequiredField("telefone")
	}
	return nil
}

func validateRequiredAddress(in AddressInput) error {
	required := []struct {
		field string
		value string
	}{
		{"cep", in.CEP},
		{"uf", in.UF},
		{"cidade", in.City},
		{"logradouro", in.Street},
		{"numero", in.Number},
		{"bairro", in.District},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.MissingRequiredField(f.field)
		}
	}
	return nil
}

// assemble monta o agregado depois dos obrigatórios e do documento.
// O email é o último a validar; qualquer falha aborta sem efeito.
func assemble(in PartnerInput, doc valueobject.Document) (*Partner, error) {
	em, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, domain.NewFieldError("email", err)
	}
	now := time.Now()
	return &Partner{
		name:      strings.TrimSpace(in.Name),
		document:  doc,
		email:     em,
		address:   normalizeAddress(in.Address),
		phone:     strings.TrimSpace(in.Phone),
		notes:     strings.TrimSpace(in.Notes),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// normalizeAddress aplica a normalização de criação: CEP só dígitos,
// UF maiúscula, demais campos com trim; complemento em branco vira ausente.
func normalizeAddress(in AddressInput) Address {
	return Address{
		CEP:        keepDigits(in.CEP),
		UF:         strings.ToUpper(strings.TrimSpace(in.UF)),
		City:       strings.TrimSpace(in.City),
		Street:     strings.TrimSpace(in.Street),
		Number:     strings.TrimSpace(in.Number),
		District:   strings.TrimSpace(in.District),
		Complement: strings.TrimSpace(in.Complement),
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ── Mutações ──────────────────────────────────────────────────────────────────

// UpdateEmail revalida e substitui o email; atualiza o carimbo de modificação.
func (p *Partner) UpdateEmail(raw string) error {
	em, err := valueobject.NewEmail(raw)
	if err != nil {
		return domain.NewFieldError("email", err)
	}
	p.email = em
	p.updatedAt = time.Now()
	return nil
}

// UpdatePhone troca o telefone; rejeita valor em branco.
func (p *Partner) UpdatePhone(raw string) error {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return domain.NewFieldError("telefone", domain.ErrEmptyInput)
	}
	p.phone = phone
	p.updatedAt = time.Now()
	return nil
}

// UpdateAddress revalida os obrigatórios do endereço e substitui o bloco
// inteiro. Valida tudo antes de escrever: em caso de erro o endereço
// anterior permanece intacto.
func (p *Partner) UpdateAddress(in AddressInput) error {
	if err := validateRequiredAddress(in); err != nil {
		return err
	}
	p.address = normalizeAddress(in)
	p.updatedAt = time.Now()
	return nil
}

// AssignID grava a identidade atribuída pelo armazenamento. Só tem efeito
// na primeira chamada; a identidade de um agregado não muda.
func (p *Partner) AssignID(id string) {
	if p.id == "" {
		p.id = id
	}
}

// ── Leitura ───────────────────────────────────────────────────────────────────

func (p *Partner) ID() string                     { return p.id }
func (p *Partner) Name() string                   { return p.name }
func (p *Partner) Document() valueobject.Document { return p.document }
func (p *Partner) Email() valueobject.Email       { return p.email }
func (p *Partner) Address() Address               { return p.address }
func (p *Partner) Phone() string                  { return p.phone }
func (p *Partner) Notes() string                  { return p.notes }
func (p *Partner) CreatedAt() time.Time           { return p.createdAt }
func (p *Partner) UpdatedAt() time.Time           { return p.updatedAt }

// IsLegalPerson informa se o documento é um CNPJ.
func (p *Partner) IsLegalPerson() bool {
	_, ok := p.document.(valueobject.CNPJ)
	return ok
}

// IsNaturalPerson informa se o documento é um CPF
// (mutuamente exclusivo com IsLegalPerson por construção).
func (p *Partner) IsNaturalPerson() bool {
	_, ok := p.document.(valueobject.CPF)
	return ok
}

// HasCorporateEmail delega a classificação ao objeto de valor Email.
func (p *Partner) HasCorporateEmail() bool { return p.email.IsCorporate() }

// FormattedDocument devolve o documento com a máscara oficial.
func (p *Partner) FormattedDocument() string { return p.document.Formatted() }

// PersonType devolve o código persistível do tipo de pessoa.
func (p *Partner) PersonType() string {
	if p.IsLegalPerson() {
		return PersonTypeLegal
	}
	return PersonTypeNatural
}

// PersonTypeLabel devolve o rótulo de exibição do tipo de pessoa.
func (p *Partner) PersonTypeLabel() string {
	if p.IsLegalPerson() {
		return PersonTypeLegalLabel
	}
	return PersonTypeNaturalLabel
}
