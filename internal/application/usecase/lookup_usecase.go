package usecase

import (
	"context"
	"time"

	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/application/ports"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

// Timeout por consulta externa: latência de terceiros não pode prender
// as goroutines do servidor.
const lookupTimeout = 8 * time.Second

// LookupUseCase orquestra as consultas externas de pré-preenchimento do
// formulário (CEP via ViaCEP, CNPJ via ReceitaWS). A entrada é validada
// pelos objetos de valor do núcleo antes de qualquer chamada de rede.
type LookupUseCase struct {
	address ports.AddressLookup
	company ports.CompanyLookup
}

// NewLookupUseCase constrói o caso de uso injetando os portos de consulta.
func NewLookupUseCase(address ports.AddressLookup, company ports.CompanyLookup) *LookupUseCase {
	return &LookupUseCase{address: address, company: company}
}

// FindAddress consulta o endereço de um CEP.
func (uc *LookupUseCase) FindAddress(ctx context.Context, rawCEP string) (*dto.CEPLookupResponse, error) {
	cep, err := valueobject.NewCEP(rawCEP)
	if err != nil {
		return nil, domain.NewFieldError("cep", err)
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return uc.address.FindByCEP(ctx, cep)
}

// FindCompany consulta os dados cadastrais de um CNPJ. O CNPJ passa pelo
// validador do núcleo primeiro: não faz sentido gastar chamada externa com
// documento que não fecha o dígito verificador.
func (uc *LookupUseCase) FindCompany(ctx context.Context, rawCNPJ string) (*dto.CNPJLookupResponse, error) {
	cnpj, err := valueobject.NewCNPJ(rawCNPJ)
	if err != nil {
		return nil, domain.NewFieldError("cnpj", err)
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()
	return uc.company.FindByCNPJ(ctx, cnpj)
}
