package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parceiroslab/cadastro-api/internal/application/auth"
	"github.com/parceiroslab/cadastro-api/internal/application/report"
	"github.com/parceiroslab/cadastro-api/internal/application/usecase"
	"github.com/parceiroslab/cadastro-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PartnerUC *usecase.PartnerUseCase
	LookupUC  *usecase.LookupUseCase
	PDFUC     *report.PDFUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC, deps.PDFUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id/email", partnerHandler.UpdateEmail)
	partners.Put("/:id/phone", partnerHandler.UpdatePhone)
	partners.Put("/:id/address", partnerHandler.UpdateAddress)
	partners.Get("/:id/pdf", partnerHandler.PDF)
	partners.Delete("/:id", RequireRole(entity.RoleAdmin), partnerHandler.Delete)

	// Consultas externas (protegido)
	lookup := protected.Group("/lookup")
	lookupHandler := NewLookupHandler(deps.LookupUC)
	lookup.Get("/cep/:cep", lookupHandler.FindCEP)
	lookup.Get("/cnpj/:cnpj", lookupHandler.FindCNPJ)
}
