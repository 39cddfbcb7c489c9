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

	"github.com/skyllex94/orderexpress-api/internal/application/auth"
	"github.com/skyllex94/orderexpress-api/internal/application/usecase"
	infraemail "github.com/skyllex94/orderexpress-api/internal/infrastructure/email"
	infrapdf "github.com/skyllex94/orderexpress-api/internal/infrastructure/pdf"
	"github.com/skyllex94/orderexpress-api/internal/infrastructure/postgres"
	httpRouter "github.com/skyllex94/orderexpress-api/internal/interfaces/http"
	"github.com/skyllex94/orderexpress-api/pkg/config"
	"github.com/skyllex94/orderexpress-api/pkg/logger"
	"github.com/skyllex94/orderexpress-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	roleRepo := postgres.NewRoleAssignmentRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	pkgRepo := postgres.NewPackagingRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	prefRepo := postgres.NewPreferenceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adaptadores externos
	mailer := infraemail.NewResendService(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress)
	orderSheetGen := infrapdf.NewMarotoOrderSheetGenerator()

	// Casos de uso
	roleSvc := usecase.NewRoleService(businessRepo, roleRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	contextUC := usecase.NewContextUseCase(businessRepo, roleRepo, prefRepo, roleSvc)
	businessUC := usecase.NewBusinessUseCase(businessRepo, roleRepo, prefRepo)
	invitationUC := usecase.NewInvitationUseCase(
		invitationRepo, businessRepo, userRepo, roleSvc, txRunner,
		mailer,
		usecase.MailerConfig{From: cfg.Mail.FromAddress, BaseURL: cfg.Mail.BaseURL},
		password.Hash,
		log.With("component", "invitations").Zerolog(),
	)
	productUC := usecase.NewProductUseCase(productRepo, pkgRepo, vendorRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	inventoryUC := usecase.NewInventoryUseCase(levelRepo, productRepo)
	memberUC := usecase.NewMemberUseCase(businessRepo, roleRepo, userRepo, roleSvc)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	orderingUC := usecase.NewOrderingUseCase(vendorRepo, businessRepo, productRepo, pkgRepo, levelRepo, orderSheetGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "OrderExpress API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ContextUC:    contextUC,
		BusinessUC:   businessUC,
		InvitationUC: invitationUC,
		ProductUC:    productUC,
		VendorUC:     vendorUC,
		InventoryUC:  inventoryUC,
		MemberUC:     memberUC,
		AnalyticsUC:  analyticsUC,
		OrderingUC:   orderingUC,
		Roles:        roleSvc,
		JWTSecret:    cfg.JWT.Secret,
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
