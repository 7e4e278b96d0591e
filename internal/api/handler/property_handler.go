package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/ports"
)

type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List godoc
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Success      200  {array}  domain.Property
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	props, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, props)
}

// Create godoc
// @Summary      Create property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      createPropertyRequest  true  "Property"
// @Success      201   {object}  domain.Property
// @Failure      403   {object}  errorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req createPropertyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	prop, err := h.service.Create(c.Request().Context(), claims, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, prop)
}
