package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/application/usecase"
)

// ReferenceHandler datos de referencia para dropdowns.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Pallets godoc
// @Summary      Listar palets con su tara
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.PalletResponse}
// @Router       /api/pallet [get]
func (h *ReferenceHandler) Pallets(c *fiber.Ctx) error {
	out, err := h.uc.ListPallets(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Freezers godoc
// @Summary      Listar freezers
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NamedResponse}
// @Router       /api/freezer [get]
func (h *ReferenceHandler) Freezers(c *fiber.Ctx) error {
	out, err := h.uc.ListFreezers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Vessels godoc
// @Summary      Listar kapal
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NamedResponse}
// @Router       /api/kapal [get]
func (h *ReferenceHandler) Vessels(c *fiber.Ctx) error {
	out, err := h.uc.ListVessels(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Warehouses godoc
// @Summary      Listar gudang
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.WarehouseResponse}
// @Router       /api/gudang [get]
func (h *ReferenceHandler) Warehouses(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Fish godoc
// @Summary      Listar ikan
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.NamedResponse}
// @Router       /api/ikan [get]
func (h *ReferenceHandler) Fish(c *fiber.Ctx) error {
	out, err := h.uc.ListFish(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Customers godoc
// @Summary      Listar clientes
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CustomerResponse}
// @Router       /api/customer [get]
func (h *ReferenceHandler) Customers(c *fiber.Ctx) error {
	out, err := h.uc.ListCustomers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
