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

	"github.com/tu-usuario/panaderia-api/internal/application/auth"
	"github.com/tu-usuario/panaderia-api/internal/application/inventory"
	"github.com/tu-usuario/panaderia-api/internal/application/reporting"
	"github.com/tu-usuario/panaderia-api/internal/application/sales"
	"github.com/tu-usuario/panaderia-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/panaderia-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/panaderia-api/internal/interfaces/http"
	"github.com/tu-usuario/panaderia-api/pkg/config"
	"github.com/tu-usuario/panaderia-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewRawMaterialRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	newsletterRepo := postgres.NewNewsletterRepository(pool)

	txTimeout := time.Duration(cfg.HTTP.TxTimeoutMS) * time.Millisecond
	txRunner := postgres.NewTxRunner(pool, txTimeout)

	recordSaleUC := sales.NewRecordSaleUseCase(txRunner)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, productRepo, materialRepo)
	newsletterUC := usecase.NewNewsletterUseCase(newsletterRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	historyUC := reporting.NewHistoryUseCase(reportRepo, pdfGenerator)
	dashboardUC := reporting.NewDashboardUseCase(reportRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})

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
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		MaterialUC:    materialUC,
		RecipeUC:      recipeUC,
		NewsletterUC:  newsletterUC,
		RecordSale:    recordSaleUC,
		AdjustStock:   adjustStockUC,
		HistoryUC:     historyUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		CookieName:    cfg.JWT.CookieName,
		CookieExpHour: cfg.JWT.ExpHours,
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
