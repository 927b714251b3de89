package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/parceiroslab/cadastro-api/internal/application/dto"
	"github.com/parceiroslab/cadastro-api/internal/domain"
)

// writeDomainError traduz erros do domínio/aplicação para respostas HTTP:
// validação -> 400 com o campo ofensor, duplicado -> 409, inexistente -> 404,
// consulta externa fora -> 502, resto -> 500.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Field:   domain.FieldOf(err),
			Message: validationMessage(err),
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "já existe um parceiro com esse documento ou email",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso não encontrado",
		})
	case errors.Is(err, domain.ErrLookupUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "LOOKUP_UNAVAILABLE", Message: "serviço de consulta externo indisponível",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}

// validationMessage devolve a mensagem da regra violada, sem o prefixo do
// campo (o campo já vai em Field).
func validationMessage(err error) string {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return fe.Err.Error()
	}
	return err.Error()
}
