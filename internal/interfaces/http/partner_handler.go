package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/application/report"
	"github.com/parceiroslab/cadastro-api/internal/application/usecase"
)

// PartnerHandler trata as requisições HTTP do cadastro de parceiros (protegido).
type PartnerHandler struct {
	uc    *usecase.PartnerUseCase
	pdfUC *report.PDFUseCase
}

// NewPartnerHandler constrói o handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase, pdfUC *report.PDFUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Cadastrar parceiro (PJ ou PF)
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "dados do parceiro"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	partner, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(partner)
}

// List godoc
// @Summary      Listar parceiros
// @Tags         partners
// @Produce      json
// @Param        limit   query  int  false  "máximo de itens (padrão 20)"
// @Param        offset  query  int  false  "deslocamento (padrão 0)"
// @Success      200  {array}  dto.PartnerResponse
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Buscar parceiro por id
// @Tags         partners
// @Produce      json
// @Param        id  path  string  true  "id do parceiro"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	partner, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(partner)
}

// UpdateEmail godoc
// @Summary      Trocar o email do parceiro
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do parceiro"
// @Param        body  body  dto.UpdatePartnerEmailRequest  true  "novo email"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/partners/{id}/email [put]
func (h *PartnerHandler) UpdateEmail(c *fiber.Ctx) error {
	var in dto.UpdatePartnerEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	partner, err := h.uc.UpdateEmail(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(partner)
}

// UpdatePhone godoc
// @Summary      Trocar o telefone do parceiro
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do parceiro"
// @Param        body  body  dto.UpdatePartnerPhoneRequest  true  "novo telefone"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id}/phone [put]
func (h *PartnerHandler) UpdatePhone(c *fiber.Ctx) error {
	var in dto.UpdatePartnerPhoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	partner, err := h.uc.UpdatePhone(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(partner)
}

// UpdateAddress godoc
// @Summary      Trocar o endereço completo do parceiro
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id do parceiro"
// @Param        body  body  dto.UpdatePartnerAddressRequest  true  "novo endereço"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id}/address [put]
func (h *PartnerHandler) UpdateAddress(c *fiber.Ctx) error {
	var in dto.UpdatePartnerAddressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	partner, err := h.uc.UpdateAddress(c.Params("id"), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(partner)
}

// Delete godoc
// @Summary      Remover parceiro (somente admin)
// @Tags         partners
// @Param        id  path  string  true  "id do parceiro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id} [delete]
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Ficha cadastral do parceiro em PDF
// @Tags         partners
// @Produce      application/pdf
// @Param        id  path  string  true  "id do parceiro"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/partners/{id}/pdf [get]
func (h *PartnerHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.pdfUC.GenerateSheet(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="parceiro-%s.pdf"`, id))
	return c.Send(pdf)
}
