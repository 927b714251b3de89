package dto

import "github.com/shopspring/decimal"

// CEPLookupResponse resultado da consulta de endereço por CEP (ViaCEP).
// Os campos são pré-preenchimento do formulário: passam pelas mesmas
// validações do agregado na hora do cadastro.
type CEPLookupResponse struct {
	CEP         string `json:"cep"` // dígitos normalizados
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
}

// CNPJLookupResponse resultado da consulta cadastral por CNPJ (ReceitaWS).
type CNPJLookupResponse struct {
	CNPJ          string          `json:"cnpj"` // dígitos normalizados
	RazaoSocial   string          `json:"razao_social"`
	NomeFantasia  string          `json:"nome_fantasia,omitempty"`
	Situacao      string          `json:"situacao,omitempty"`
	Abertura      string          `json:"abertura,omitempty"` // DD/MM/AAAA como devolvido pela fonte
	Email         string          `json:"email,omitempty"`
	Telefone      string          `json:"telefone,omitempty"`
	CapitalSocial decimal.Decimal `json:"capital_social"`
	CEP           string          `json:"cep,omitempty"`
	Logradouro    string          `json:"logradouro,omitempty"`
	Numero        string          `json:"numero,omitempty"`
	Complemento   string          `json:"complemento,omitempty"`
	Bairro        string          `json:"bairro,omitempty"`
	Cidade        string          `json:"cidade,omitempty"`
	UF            string          `json:"uf,omitempty"`
}
