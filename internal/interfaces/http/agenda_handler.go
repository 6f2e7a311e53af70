package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
)

// AgendaHandler CRUD de live tracking (agenda de vehículos).
type AgendaHandler struct {
	uc *agenda.AgendaUseCase
}

// NewAgendaHandler construye el handler.
func NewAgendaHandler(uc *agenda.AgendaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// List godoc
// @Summary      Listar agenda
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.Envelope{data=[]dto.AgendaResponse}
// @Router       /api/live_tracking [get]
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("page", 1), clampLimit(c.QueryInt("limit", 20)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Paged(out.Items, out.Page, out.Limit, out.Total))
}

// GetByID godoc
// @Summary      Obtener registro de agenda
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      200  {object}  dto.Envelope{data=dto.AgendaResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/live_tracking/{id} [get]
func (h *AgendaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	record, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(agenda.ToAgendaResponse(record)))
}

// Create godoc
// @Summary      Crear registro de agenda
// @Tags         live_tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgendaRequest  true  "Registro completo"
// @Success      201   {object}  dto.Envelope{data=dto.AgendaResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/live_tracking [post]
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var in dto.AgendaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Reemplazar registro de agenda
// @Tags         live_tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del registro"
// @Param        body  body  dto.AgendaRequest  true  "Registro completo"
// @Success      200   {object}  dto.Envelope{data=dto.AgendaResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/live_tracking/{id} [put]
func (h *AgendaHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	var in dto.AgendaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar registro de agenda
// @Description  Devuelve la lista releída tras eliminar.
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        id     path   int  true   "ID del registro"
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.Envelope{data=[]dto.AgendaResponse}
// @Failure      404    {object}  dto.Envelope
// @Router       /api/live_tracking/{id} [delete]
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Delete(c.UserContext(), id, c.QueryInt("page", 1), clampLimit(c.QueryInt("limit", 20)))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Paged(out.Items, out.Page, out.Limit, out.Total))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
