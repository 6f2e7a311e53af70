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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Jinzyy/project-eza-sub000/internal/application/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/application/lookup"
	"github.com/Jinzyy/project-eza-sub000/internal/application/receiving"
	"github.com/Jinzyy/project-eza-sub000/internal/application/usecase"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
	"github.com/Jinzyy/project-eza-sub000/internal/infrastructure/collaborator"
	"github.com/Jinzyy/project-eza-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Jinzyy/project-eza-sub000/internal/interfaces/http"
	"github.com/Jinzyy/project-eza-sub000/pkg/config"
	"github.com/Jinzyy/project-eza-sub000/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("lookup_source", cfg.Lookup.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	referenceRepo := postgres.NewReferenceRepository(pool)
	agendaRepo := postgres.NewAgendaRepository(pool)
	receiptRepo := postgres.NewGoodsReceiptRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Colecciones LOV: tablas locales o API REST del sistema de registro.
	var documents repository.DocumentRepository = postgres.NewDocumentRepository(pool)
	if cfg.Lookup.Source == config.LookupSourceRemote {
		client, err := collaborator.NewClient(cfg.Collaborator)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente del colaborador")
		}
		documents = client
	}
	resolver := lookup.NewResolver(documents, log.Component("lookup"))
	resolver.SetFetchTimeout(cfg.Lookup.FetchTimeout)

	referenceUC := usecase.NewReferenceUseCase(referenceRepo)
	agendaUC := agenda.NewAgendaUseCase(agendaRepo, log.Component("agenda"))
	sessions := agenda.NewSessionManager(agendaUC, resolver, cfg.Lookup.PageSize, cfg.Lookup.SessionTTL, log.Component("edit_session"))
	defer sessions.Close()
	receivingUC := receiving.NewReceivingUseCase(txRunner, receiptRepo, referenceRepo, log.Component("receiving"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Eza Operations API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReferenceUC: referenceUC,
		AgendaUC:    agendaUC,
		Sessions:    sessions,
		Resolver:    resolver,
		ReceivingUC: receivingUC,
		PageSize:    cfg.Lookup.PageSize,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
