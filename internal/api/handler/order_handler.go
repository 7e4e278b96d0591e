package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/ports"
)

// OrderHandler serves purchase orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List godoc
// @Summary      List orders
// @Description  Newest first. An unknown status filter is ignored.
// @Tags         orders
// @Produce      json
// @Param        property  query  string  true   "Property id"
// @Param        status    query  string  false  "Submitted, Approved, Ordered, Shipped, Delivered or Rejected"
// @Success      200       {array}  domain.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	orders, err := h.service.List(c.Request().Context(), claims, c.QueryParam("property"), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create godoc
// @Summary      Submit order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order"
// @Success      201   {object}  idResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), claims, ports.OrderInput{
		Property: req.Property,
		Title:    req.Title,
		Items:    req.Items,
		NeededBy: req.NeededBy,
		Vendor:   req.Vendor,
		Cost:     req.Cost,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Update godoc
// @Summary      Update order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields"
// @Success      200   {object}  statusResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req updateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	err = h.service.Update(c.Request().Context(), claims, c.Param("id"), ports.OrderUpdateInput{
		Property:       req.Property,
		Title:          req.Title,
		Items:          req.Items,
		NeededBy:       req.NeededBy,
		Vendor:         req.Vendor,
		Cost:           req.Cost,
		Notes:          req.Notes,
		TrackingNumber: req.TrackingNumber,
		Status:         req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse)
}

// Delete godoc
// @Summary      Delete order
// @Tags         orders
// @Param        id        path   string  true  "Order id"
// @Param        property  query  string  true  "Property id"
// @Success      204
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id"), c.QueryParam("property")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
