package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/application/lookup"
	"github.com/Jinzyy/project-eza-sub000/internal/application/receiving"
	"github.com/Jinzyy/project-eza-sub000/internal/application/usecase"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReferenceUC *usecase.ReferenceUseCase
	AgendaUC    *agenda.AgendaUseCase
	Sessions    *agenda.SessionManager
	Resolver    *lookup.Resolver
	ReceivingUC *receiving.ReceivingUseCase
	PageSize    int
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Datos de referencia
	refHandler := NewReferenceHandler(deps.ReferenceUC)
	api.Get("/pallet", refHandler.Pallets)
	api.Get("/freezer", refHandler.Freezers)
	api.Get("/kapal", refHandler.Vessels)
	api.Get("/gudang", refHandler.Warehouses)
	api.Get("/ikan", refHandler.Fish)
	api.Get("/customer", refHandler.Customers)

	// Live tracking: sesiones de edición antes que /:id
	liveTracking := api.Group("/live_tracking")
	editHandler := NewEditSessionHandler(deps.Sessions)
	liveTracking.Get("/edit/:session", editHandler.Get)
	liveTracking.Put("/edit/:session/domain", editHandler.SwitchDomain)
	liveTracking.Put("/edit/:session/document", editHandler.SelectDocument)
	liveTracking.Put("/edit/:session/fields", editHandler.ApplyFields)
	liveTracking.Post("/edit/:session/submit", editHandler.Submit)
	liveTracking.Delete("/edit/:session", editHandler.Cancel)
	liveTracking.Post("/:id/edit", editHandler.Open)

	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	liveTracking.Get("/", agendaHandler.List)
	liveTracking.Post("/", agendaHandler.Create)
	liveTracking.Get("/:id", agendaHandler.GetByID)
	liveTracking.Put("/:id", agendaHandler.Update)
	liveTracking.Delete("/:id", agendaHandler.Delete)

	// Penerimaan barang: rutas fijas antes que /:id
	recvHandler := NewReceivingHandler(deps.ReceivingUC)
	receipts := api.Group("/penerimaan_barang")
	receipts.Post("/netto", recvHandler.PreviewNetto)
	receipts.Post("/", recvHandler.Submit)
	receipts.Get("/:id", recvHandler.GetByID)
	receipts.Post("/:id/done", recvHandler.MarkDone)
	receipts.Get("/:id/print", recvHandler.ReceiptPrint)
	receipts.Get("/:id/print/stock", recvHandler.StockLedgerPrint)

	// Colecciones LOV de documentos
	lookupHandler := NewLookupHandler(deps.Resolver, deps.PageSize)
	for _, t := range entity.DocumentTypes {
		api.Get("/"+t.Resource(), lookupHandler.List(t))
	}
}
