package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parceiroslab/cadastro-api/internal/application/usecase"
)

// LookupHandler trata as consultas externas de pré-preenchimento (protegido).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler constrói o handler de consultas.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// FindCEP godoc
// @Summary      Consultar endereço por CEP (ViaCEP)
// @Tags         lookup
// @Produce      json
// @Param        cep  path  string  true  "CEP com 8 dígitos"
// @Success      200  {object}  dto.CEPLookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/lookup/cep/{cep} [get]
func (h *LookupHandler) FindCEP(c *fiber.Ctx) error {
	out, err := h.uc.FindAddress(c.Context(), c.Params("cep"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// FindCNPJ godoc
// @Summary      Consultar dados cadastrais por CNPJ (ReceitaWS)
// @Tags         lookup
// @Produce      json
// @Param        cnpj  path  string  true  "CNPJ com 14 dígitos"
// @Success      200  {object}  dto.CNPJLookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/lookup/cnpj/{cnpj} [get]
func (h *LookupHandler) FindCNPJ(c *fiber.Ctx) error {
	out, err := h.uc.FindCompany(c.Context(), c.Params("cnpj"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
