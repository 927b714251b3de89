// Package receitaws implementa a consulta cadastral de CNPJ no serviço
// ReceitaWS (https://receitaws.com.br). Assim como o ViaCEP, o resultado é
// apenas pré-preenchimento de formulário: entrada não confiável.
package receitaws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/application/ports"
	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
)

// Verificação em tempo de compilação de que Client implementa CompanyLookup.
var _ ports.CompanyLookup = (*Client)(nil)

const defaultBaseURL = "https://receitaws.com.br"

// Client adaptador HTTP para o ReceitaWS (plano público, sem autenticação).
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

// receitawsResponse corpo devolvido pelo ReceitaWS. CNPJ inexistente responde
// 200 com status "ERROR" e uma mensagem; capital_social vem como string
// decimal ("1000000.00").
type receitawsResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Nome          string `json:"nome"`
	Fantasia      string `json:"fantasia"`
	Situacao      string `json:"situacao"`
	Abertura      string `json:"abertura"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	CapitalSocial string `json:"capital_social"`
	CEP           string `json:"cep"`
	Logradouro    string `json:"logradouro"`
	Numero        string `json:"numero"`
	Complemento   string `json:"complemento"`
	Bairro        string `json:"bairro"`
	Municipio     string `json:"municipio"`
	UF            string `json:"uf"`
}

// FindByCNPJ consulta os dados cadastrais de um CNPJ já validado.
func (c *Client) FindByCNPJ(ctx context.Context, cnpj valueobject.CNPJ) (*dto.CNPJLookupResponse, error) {
	url := fmt.Sprintf("%s/v1/cnpj/%s", c.baseURL, cnpj.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("receitaws: montar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: receitaws: %v", domain.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// segue
	case http.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		// 429 do plano público cai aqui também: indisponível, tentar depois.
		return nil, fmt.Errorf("%w: receitaws respondeu HTTP %d", domain.ErrLookupUnavailable, resp.StatusCode)
	}

	var body receitawsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: receitaws: decodificar resposta: %v", domain.ErrLookupUnavailable, err)
	}
	if strings.EqualFold(body.Status, "ERROR") {
		return nil, domain.ErrNotFound
	}

	capital, err := decimal.NewFromString(strings.TrimSpace(body.CapitalSocial))
	if err != nil {
		capital = decimal.Zero
	}

	return &dto.CNPJLookupResponse{
		CNPJ:          cnpj.String(),
		RazaoSocial:   body.Nome,
		NomeFantasia:  body.Fantasia,
		Situacao:      body.Situacao,
		Abertura:      body.Abertura,
		Email:         body.Email,
		Telefone:      body.Telefone,
		CapitalSocial: capital,
		CEP:           body.CEP,
		Logradouro:    body.Logradouro,
		Numero:        body.Numero,
		Complemento:   body.Complemento,
		Bairro:        body.Bairro,
		Cidade:        body.Municipio,
		UF:            body.UF,
	}, nil
}
