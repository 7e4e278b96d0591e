package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/ports"
)

type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// Get godoc
// @Summary      Get a property's monthly budget
// @Tags         budgets
// @Produce      json
// @Param        property  query     string  true  "Property id"
// @Success      200       {object}  map[string]number
// @Failure      403       {object}  errorResponse
// @Router       /api/budgets [get]
func (h *BudgetHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	months, err := h.service.Get(c.Request().Context(), claims, c.QueryParam("property"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, months)
}

// Put godoc
// @Summary      Replace a property's monthly budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      budgetRequest  true  "Budget"
// @Success      200   {object}  statusResponse
// @Router       /api/budgets [put]
func (h *BudgetHandler) Put(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req budgetRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.service.Put(c.Request().Context(), claims, req.Property, req.Months); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse)
}
