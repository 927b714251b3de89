package dto

import "time"

// CreatePartnerRequest entrada para criação de parceiro. TipoPessoa decide
// qual documento é esperado: "juridica" exige CNPJ, "fisica" exige CPF.
type CreatePartnerRequest struct {
	TipoPessoa  string `json:"tipo_pessoa"` // juridica | fisica
	Nome        string `json:"nome"`        // razão social (PJ) ou nome completo (PF)
	CNPJ        string `json:"cnpj,omitempty"`
	CPF         string `json:"cpf,omitempty"`
	Email       string `json:"email"`
	CEP         string `json:"cep"`
	UF          string `json:"uf"`
	Cidade      string `json:"cidade"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Complemento string `json:"complemento,omitempty"`
	Telefone    string `json:"telefone"`
	Observacoes string `json:"observacoes,omitempty"`
}

// UpdatePartnerEmailRequest entrada para troca de email.
type UpdatePartnerEmailRequest struct {
	Email string `json:"email"`
}

// UpdatePartnerPhoneRequest entrada para troca de telefone.
type UpdatePartnerPhoneRequest struct {
	Telefone string `json:"telefone"`
}

// UpdatePartnerAddressRequest entrada para troca de endereço completo.
type UpdatePartnerAddressRequest struct {
	CEP         string `json:"cep"`
	UF          string `json:"uf"`
	Cidade      string `json:"cidade"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Complemento string `json:"complemento,omitempty"`
}

// PartnerResponse saída de um parceiro para o formulário web.
type PartnerResponse struct {
	ID                 string    `json:"id"`
	TipoPessoa         string    `json:"tipo_pessoa"`
	TipoPessoaRotulo   string    `json:"tipo_pessoa_rotulo"` // "Pessoa Jurídica" | "Pessoa Física"
	Nome               string    `json:"nome"`
	Documento          string    `json:"documento"` // dígitos normalizados
	DocumentoFormatado string    `json:"documento_formatado"`
	Email              string    `json:"email"`
	EmailCorporativo   bool      `json:"email_corporativo"`
	CEP                string    `json:"cep"`
	UF                 string    `json:"uf"`
	Cidade             string    `json:"cidade"`
	Logradouro         string    `json:"logradouro"`
	Numero             string    `json:"numero"`
	Bairro             string    `json:"bairro"`
	Complemento        string    `json:"complemento,omitempty"`
	Telefone           string    `json:"telefone"`
	Observacoes        string    `json:"observacoes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
