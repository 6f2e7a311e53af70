package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/lookup"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
)

// LookupHandler colecciones LOV paginadas de documentos. Cada petición reemplaza la
// entrada de caché del tipo y dispara la conciliación de las sesiones que la esperan.
type LookupHandler struct {
	resolver *lookup.Resolver
	pageSize int
}

// NewLookupHandler construye el handler; pageSize es el límite por defecto.
func NewLookupHandler(resolver *lookup.Resolver, pageSize int) *LookupHandler {
	return &LookupHandler{resolver: resolver, pageSize: pageSize}
}

// List devuelve el handler de listado para el tipo t.
//
// @Summary      Listar documentos activos (LOV)
// @Tags         lookup
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {object}  dto.Envelope{data=[]dto.DocumentSummaryResponse}
// @Failure      502    {object}  dto.Envelope
// @Router       /api/sales_order [get]
// @Router       /api/delivery_order [get]
// @Router       /api/invoice [get]
// @Router       /api/penerimaan_barang [get]
// @Router       /api/nota_pembelian [get]
func (h *LookupHandler) List(t entity.DocumentType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.resolver.FetchPage(c.UserContext(), t, c.QueryInt("page", 1), c.QueryInt("limit", h.pageSize))
		if err != nil {
			return respondError(c, err)
		}
		items := make([]dto.DocumentSummaryResponse, 0, len(res.Page.Items))
		for _, d := range res.Page.Items {
			items = append(items, dto.DocumentSummaryResponse{
				ID:               d.ID,
				Number:           d.Number,
				CounterpartyName: d.CounterpartyName,
			})
		}
		return c.JSON(dto.Paged(items, res.Page.Page, res.Page.PageSize, res.Page.Total))
	}
}
