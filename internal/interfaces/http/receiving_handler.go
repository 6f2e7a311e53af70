package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/receiving"
)

// ReceivingHandler penerimaan barang: envío de descargas, cierre y payloads de impresión.
type ReceivingHandler struct {
	uc *receiving.ReceivingUseCase
}

// NewReceivingHandler construye el handler.
func NewReceivingHandler(uc *receiving.ReceivingUseCase) *ReceivingHandler {
	return &ReceivingHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar descarga
// @Description  Calcula netto por palet, agrega por pescado y persiste la recepción con número PB-AAAAMMDD-NNNN.
// @Tags         penerimaan_barang
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitUnloadingRequest  true  "Descarga"
// @Success      201   {object}  dto.Envelope{data=dto.SubmitUnloadingResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/penerimaan_barang [post]
func (h *ReceivingHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitUnloadingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.SubmitUnloading(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// PreviewNetto godoc
// @Summary      Previsualizar netto por palet
// @Tags         penerimaan_barang
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NettoPreviewRequest  true  "Líneas de palet"
// @Success      200   {object}  dto.Envelope{data=[]dto.NettoPreviewLine}
// @Router       /api/penerimaan_barang/netto [post]
func (h *ReceivingHandler) PreviewNetto(c *fiber.Ctx) error {
	var in dto.NettoPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.PreviewNetto(c.UserContext(), in.Pallets)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener recepción
// @Tags         penerimaan_barang
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  dto.Envelope{data=dto.GoodsReceiptResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/penerimaan_barang/{id} [get]
func (h *ReceivingHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetReceipt(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// MarkDone godoc
// @Summary      Cerrar recepción
// @Tags         penerimaan_barang
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/penerimaan_barang/{id}/done [post]
func (h *ReceivingHandler) MarkDone(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.MarkDone(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Envelope{Status: true, Message: "recepción cerrada"})
}

// ReceiptPrint godoc
// @Summary      Payload de impresión de la recepción
// @Tags         penerimaan_barang
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  dto.Envelope{data=dto.ReceiptPrintPayload}
// @Router       /api/penerimaan_barang/{id}/print [get]
func (h *ReceivingHandler) ReceiptPrint(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.ReceiptPrintPayload(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// StockLedgerPrint godoc
// @Summary      Payload de impresión del libro de stock
// @Tags         penerimaan_barang
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  dto.Envelope{data=dto.StockLedgerPrintPayload}
// @Router       /api/penerimaan_barang/{id}/print/stock [get]
func (h *ReceivingHandler) StockLedgerPrint(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.StockLedgerPrintPayload(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
