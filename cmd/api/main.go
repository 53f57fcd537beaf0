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

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/excel"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/memory"
	infrapdf "github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/pdf"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/postgres"
	httpRouter "github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/interfaces/http"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/config"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

// gateways agrupa los cinco puertos del gateway de datos, vengan del almacén
// remoto o de los fixtures en memoria.
type gateways struct {
	cases     repository.CaseRepository
	doctors   repository.DoctorRepository
	finance   repository.FinanceRepository
	inventory repository.InventoryRepository
	staff     repository.StaffRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("configuración inválida: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Data.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var gw gateways
	switch cfg.Data.Backend {
	case config.BackendMemory:
		store := memory.NewStore(memory.DefaultSeed())
		gw = gateways{
			cases:     store.Cases(),
			doctors:   store.Doctors(),
			finance:   store.Finance(),
			inventory: store.Inventory(),
			staff:     store.Staff(),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		gw = gateways{
			cases:     postgres.NewCaseRepository(pool, log),
			doctors:   postgres.NewDoctorRepository(pool, log),
			finance:   postgres.NewFinanceRepository(pool, log),
			inventory: postgres.NewInventoryRepository(pool, log),
			staff:     postgres.NewStaffRepository(pool, log),
		}
	}

	caseUC := usecase.NewCaseUseCase(gw.cases)
	doctorUC := usecase.NewDoctorUseCase(gw.doctors, gw.cases)
	financeUC := usecase.NewFinanceUseCase(gw.finance, gw.cases)
	dashboardUC := usecase.NewDashboardUseCase(gw.cases, gw.finance)
	inventoryUC := usecase.NewInventoryUseCase(gw.inventory)
	staffUC := usecase.NewStaffUseCase(gw.staff)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoiceUC := usecase.NewInvoiceUseCase(gw.finance, gw.cases, gw.doctors, pdfGenerator)
	exporter := excel.NewFinanceExporter()

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
		Title:    "Bdigital Dental Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CaseUC:      caseUC,
		DoctorUC:    doctorUC,
		FinanceUC:   financeUC,
		DashboardUC: dashboardUC,
		InventoryUC: inventoryUC,
		StaffUC:     staffUC,
		InvoiceUC:   invoiceUC,
		Exporter:    exporter,
		JWTSecret:   cfg.JWT.Secret,
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
