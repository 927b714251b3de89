// Package ports define os portos de saída da camada de aplicação.
package ports

import (
	"context"

	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

// AddressLookup consulta um endereço por CEP em um serviço externo (ViaCEP).
// Devolve domain.ErrNotFound quando o CEP não existe na base do serviço e
// domain.ErrLookupUnavailable quando o serviço falha.
type AddressLookup interface {
	FindByCEP(ctx context.Context, cep valueobject.CEP) (*dto.CEPLookupResponse, error)
}

// CompanyLookup consulta os dados cadastrais de um CNPJ em um serviço externo
// (ReceitaWS). Mesma semântica de erro do AddressLookup.
type CompanyLookup interface {
	FindByCNPJ(ctx context.Context, cnpj valueobject.CNPJ) (*dto.CNPJLookupResponse, error)
}
