package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/parceiroslab/cadastro-api/internal/application/auth"
	"github.com/parceiroslab/cadastro-api/internal/application/report"
	"github.com/parceiroslab/cadastro-api/internal/application/usecase"
	"github.com/parceiroslab/cadastro-api/internal/domain/valueobject"
	infrapdf "github.com/parceiroslab/cadastro-api/internal/infrastructure/pdf"
	"github.com/parceiroslab/cadastro-api/internal/infrastructure/postgres"
	"github.com/parceiroslab/cadastro-api/internal/infrastructure/receitaws"
	"github.com/parceiroslab/cadastro-api/internal/infrastructure/viacep"
	httpRouter "github.com/parceiroslab/cadastro-api/internal/interfaces/http"
	"github.com/parceiroslab/cadastro-api/pkg/config"
	"github.com/parceiroslab/cadastro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Provedores pessoais extras vindos da configuração (a lista padrão já
	// cobre os grandes provedores brasileiros e internacionais).
	valueobject.RegisterPersonalDomains(cfg.Email.PersonalDomains...)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	partnerRepo := postgres.NewPartnerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	partnerUC := usecase.NewPartnerUseCase(partnerRepo)

	lookupTimeout := time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second
	viaCEPClient := viacep.NewClient(cfg.Lookup.ViaCEPBaseURL, lookupTimeout)
	receitaWSClient := receitaws.NewClient(cfg.Lookup.ReceitaWSBaseURL, lookupTimeout)
	lookupUC := usecase.NewLookupUseCase(viaCEPClient, receitaWSClient)

	// PDF: ficha cadastral do parceiro
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := report.NewPDFUseCase(partnerRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cadastro de Parceiros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartnerUC: partnerUC,
		LookupUC:  lookupUC,
		PDFUC:     pdfUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
