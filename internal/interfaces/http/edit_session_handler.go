package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/agenda"
	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
)

// EditSessionHandler formularios de edición de agenda mantenidos en el servidor.
type EditSessionHandler struct {
	sessions *agenda.SessionManager
}

// NewEditSessionHandler construye el handler.
func NewEditSessionHandler(sessions *agenda.SessionManager) *EditSessionHandler {
	return &EditSessionHandler{sessions: sessions}
}

// Open godoc
// @Summary      Abrir sesión de edición
// @Description  Precarga las colecciones LOV del dominio del registro y concilia los números.
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del registro"
// @Success      201  {object}  dto.Envelope{data=dto.EditFormResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/live_tracking/{id}/edit [post]
func (h *EditSessionHandler) Open(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "id inválido")
	}
	out, err := h.sessions.Open(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Get godoc
// @Summary      Estado del formulario de edición
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        session  path  string  true  "ID de la sesión"
// @Success      200      {object}  dto.Envelope{data=dto.EditFormResponse}
// @Failure      404      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session} [get]
func (h *EditSessionHandler) Get(c *fiber.Ctx) error {
	out, err := h.sessions.Get(c.Params("session"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// SwitchDomain godoc
// @Summary      Cambiar el dominio del formulario
// @Description  Reinicia las referencias de documento al dominio indicado.
// @Tags         live_tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        session  path  string                   true  "ID de la sesión"
// @Param        body     body  dto.SwitchDomainRequest  true  "Dominio (sale | purchase)"
// @Success      200      {object}  dto.Envelope{data=dto.EditFormResponse}
// @Failure      400      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session}/domain [put]
func (h *EditSessionHandler) SwitchDomain(c *fiber.Ctx) error {
	var in dto.SwitchDomainRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.sessions.SwitchDomain(c.Params("session"), in.Domain)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// SelectDocument godoc
// @Summary      Seleccionar documento de una LOV
// @Tags         live_tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        session  path  string                     true  "ID de la sesión"
// @Param        body     body  dto.SelectDocumentRequest  true  "Tipo e id del documento"
// @Success      200      {object}  dto.Envelope{data=dto.EditFormResponse}
// @Failure      400      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session}/document [put]
func (h *EditSessionHandler) SelectDocument(c *fiber.Ctx) error {
	var in dto.SelectDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.sessions.SelectDocument(c.Params("session"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ApplyFields godoc
// @Summary      Editar campos libres del formulario
// @Tags         live_tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        session  path  string                 true  "ID de la sesión"
// @Param        body     body  dto.EditFieldsRequest  true  "Campos a modificar"
// @Success      200      {object}  dto.Envelope{data=dto.EditFormResponse}
// @Failure      400      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session}/fields [put]
func (h *EditSessionHandler) ApplyFields(c *fiber.Ctx) error {
	var in dto.EditFieldsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.sessions.ApplyFields(c.Params("session"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Submit godoc
// @Summary      Enviar el formulario
// @Description  Si el sistema de registro rechaza el update, el formulario queda intacto.
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        session  path  string  true  "ID de la sesión"
// @Success      200      {object}  dto.Envelope{data=dto.AgendaResponse}
// @Failure      400      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session}/submit [post]
func (h *EditSessionHandler) Submit(c *fiber.Ctx) error {
	out, err := h.sessions.Submit(c.UserContext(), c.Params("session"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Cancel godoc
// @Summary      Cancelar la sesión de edición
// @Tags         live_tracking
// @Security     Bearer
// @Produce      json
// @Param        session  path  string  true  "ID de la sesión"
// @Success      200      {object}  dto.Envelope
// @Failure      404      {object}  dto.Envelope
// @Router       /api/live_tracking/edit/{session} [delete]
func (h *EditSessionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.sessions.Cancel(c.Params("session")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Envelope{Status: true, Message: "sesión cancelada"})
}
