package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CaseUC      *usecase.CaseUseCase
	DoctorUC    *usecase.DoctorUseCase
	FinanceUC   *usecase.FinanceUseCase
	DashboardUC *usecase.DashboardUseCase
	InventoryUC *usecase.InventoryUseCase
	StaffUC     *usecase.StaffUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	Exporter    *excel.FinanceExporter
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestIDMiddleware())

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Casos
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Get("/", caseHandler.List)
	cases.Get("/:id", caseHandler.GetByID)
	cases.Put("/:id", caseHandler.Update)

	// Doctores
	doctors := protected.Group("/doctors")
	doctorHandler := NewDoctorHandler(deps.DoctorUC)
	doctors.Get("/", doctorHandler.List)
	doctors.Get("/:id", doctorHandler.GetByID)
	doctors.Get("/:id/cases", doctorHandler.Cases)

	// Finanzas
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.Exporter)
	finance.Get("/", financeHandler.Report)
	finance.Get("/export", financeHandler.Export)

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Inventario
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.Overview)

	// Personal
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.Overview)

	// Resumen del panel
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
}
