// Herramienta de diagnóstico de la conexión al almacén remoto: valida la
// configuración, lista una muestra de cada tabla del panel y prueba una
// escritura inocua (re-estampar updated_at de un caso).
package main

import (
	"context"
	"time"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/postgres"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/config"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	// El diagnóstico siempre apunta al almacén remoto.
	cfg.Data.Backend = config.BackendPostgres

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta, nada que verificar")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("conexión establecida")

	caseRepo := postgres.NewCaseRepository(pool, log)
	doctorRepo := postgres.NewDoctorRepository(pool, log)
	financeRepo := postgres.NewFinanceRepository(pool, log)
	inventoryRepo := postgres.NewInventoryRepository(pool, log)
	staffRepo := postgres.NewStaffRepository(pool, log)

	cases, err := caseRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer casos")
	}
	log.Info().Int("count", len(cases)).Msg("casos")

	doctors, err := doctorRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer doctores")
	}
	log.Info().Int("count", len(doctors)).Msg("doctores")

	expenses, err := financeRepo.ListExpenses(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer gastos")
	}
	invoices, err := financeRepo.ListInvoices(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer facturas")
	}
	log.Info().Int("expenses", len(expenses)).Int("invoices", len(invoices)).Msg("finanzas")

	products, err := inventoryRepo.ListProducts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer inventario")
	}
	log.Info().Int("count", len(products)).Msg("variantes de inventario")

	employees, err := staffRepo.ListEmployees(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer empleados")
	}
	log.Info().Int("count", len(employees)).Msg("empleados")

	// Prueba de escritura: actualización vacía sobre el primer caso, que solo
	// re-estampa updated_at. No toca ningún otro campo.
	if len(cases) == 0 {
		log.Warn().Msg("sin casos: se omite la prueba de escritura")
		log.Info().Msg("verificación completada")
		return
	}
	sample := cases[0]
	updated, err := caseRepo.Update(ctx, sample.ID, entity.CaseUpdate{})
	if err != nil {
		log.Fatal().Err(err).Str("case_id", sample.ID).Msg("prueba de escritura")
	}
	if updated == nil {
		log.Fatal().Str("case_id", sample.ID).Msg("el caso desapareció durante la verificación")
	}
	log.Info().
		Str("case_id", updated.ID).
		Time("updated_at", updated.UpdatedAt).
		Msg("prueba de escritura OK")

	log.Info().Msg("verificación completada")
}
