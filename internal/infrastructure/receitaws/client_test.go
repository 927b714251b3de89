package receitaws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parceiroslab/cadastro-api/internal/domain"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
	"github.com/parceiroslab/cadastro-api/internal/infrastructure/receitaws"
)

func mustCNPJ(t *testing.T, raw string) valueobject.CNPJ {
	t.Helper()
	cnpj, err := valueobject.NewCNPJ(raw)
	require.NoError(t, err)
	return cnpj
}

func TestClient_FindByCNPJ(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cnpj/11222333000181", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"nome": "EMPRESA EXEMPLO LTDA",
			"fantasia": "EXEMPLO",
			"situacao": "ATIVA",
			"abertura": "29/11/2010",
			"email": "contato@empresa.com.br",
			"telefone": "(11) 3333-4444",
			"capital_social": "1000000.00",
			"cep": "01.310-100",
			"logradouro": "AVENIDA PAULISTA",
			"numero": "1000",
			"bairro": "BELA VISTA",
			"municipio": "SAO PAULO",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	client := receitaws.NewClient(srv.URL, 2*time.Second)
	out, err := client.FindByCNPJ(context.Background(), mustCNPJ(t, "11.222.333/0001-81"))
	require.NoError(t, err)

	assert.Equal(t, "11222333000181", out.CNPJ)
	assert.Equal(t, "EMPRESA EXEMPLO LTDA", out.RazaoSocial)
	assert.Equal(t, "SAO PAULO", out.Cidade)
	assert.True(t, out.CapitalSocial.Equal(decimal.RequireFromString("1000000.00")))
}

func TestClient_FindByCNPJ_Inexistente(t *testing.T) {
	// CNPJ com dígito válido mas não cadastrado: status ERROR com HTTP 200.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ERROR", "message": "CNPJ inválido"}`))
	}))
	defer srv.Close()

	client := receitaws.NewClient(srv.URL, 2*time.Second)
	_, err := client.FindByCNPJ(context.Background(), mustCNPJ(t, "11444777000161"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_FindByCNPJ_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := receitaws.NewClient(srv.URL, 2*time.Second)
	_, err := client.FindByCNPJ(context.Background(), mustCNPJ(t, "11222333000181"))
	assert.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestClient_FindByCNPJ_CapitalSocialAusente(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "nome": "EMPRESA EXEMPLO LTDA"}`))
	}))
	defer srv.Close()

	client := receitaws.NewClient(srv.URL, 2*time.Second)
	out, err := client.FindByCNPJ(context.Background(), mustCNPJ(t, "11222333000181"))
	require.NoError(t, err)
	assert.True(t, out.CapitalSocial.IsZero())
}
