// Package viacep implementa a consulta de endereço por CEP no serviço público
// ViaCEP (https://viacep.com.br). O resultado é entrada não confiável: vai
// para o formulário e passa pelas validações do agregado no cadastro.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/application/ports"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

// Verificação em tempo de compilação de que Client implementa AddressLookup.
var _ ports.AddressLookup = (*Client)(nil)

const defaultBaseURL = "https://viacep.com.br"

// Client adaptador HTTP para o ViaCEP. Usa net/http da biblioteca padrão;
// o serviço não exige autenticação.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o adaptador. baseURL vazio usa o serviço público.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// viacepResponse corpo devolvido pelo ViaCEP. CEP inexistente responde 200
// com {"erro": true}, não 404.
type viacepResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        bool   `json:"erro"`
}

// FindByCEP consulta o endereço de um CEP já validado.
func (c *Client) FindByCEP(ctx context.Context, cep valueobject.CEP) (*dto.CEPLookupResponse, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep: montar request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: viacep: %v", domain.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: viacep respondeu HTTP %d", domain.ErrLookupUnavailable, resp.StatusCode)
	}

	var body viacepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: viacep: decodificar resposta: %v", domain.ErrLookupUnavailable, err)
	}
	if body.Erro {
		return nil, domain.ErrNotFound
	}

	return &dto.CEPLookupResponse{
		CEP:         cep.String(),
		Logradouro:  body.Logradouro,
		Complemento: body.Complemento,
		Bairro:      body.Bairro,
		Cidade:      body.Localidade,
		UF:          body.UF,
	}, nil
}
