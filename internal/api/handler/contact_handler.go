package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List returns the property's contacts, grouped by type unless a type filter
// is given.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Param        property  query     string  true   "Property id"
// @Param        type      query     string  false  "general, partnership or department"
// @Success      200       {object}  domain.ContactGroups
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	property := c.QueryParam("property")

	if ctype := c.QueryParam("type"); ctype != "" {
		contacts, err := h.service.List(ctx, claims, property, domain.ContactType(ctype))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, contacts)
	}

	groups, err := h.service.Grouped(ctx, claims, property)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// Create godoc
// @Summary      Create contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact"
// @Success      201   {object}  idResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req contactRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), claims, ports.ContactInput{
		Property:     req.Property,
		Type:         domain.ContactType(req.Type),
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		Phone:        req.Phone,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, idResponse{ID: id})
}

// Update replaces fields, or appends a visit when pushVisit is present.
//
// @Summary      Update contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Contact id"
// @Param        body  body      updateContactRequest  true  "Fields"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req updateContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	in := ports.ContactUpdateInput{
		Property: req.Property,
		Fields: ports.ContactFields{
			Name:         req.Name,
			Organization: req.Organization,
			Email:        req.Email,
			Phone:        req.Phone,
			Notes:        req.Notes,
		},
	}
	if v := req.PushVisit; v != nil {
		in.PushVisit = &domain.Visit{Date: v.Date, Notes: v.Notes, By: v.By}
	}
	if err := h.service.Update(c.Request().Context(), claims, c.Param("id"), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse)
}

// Delete godoc
// @Summary      Delete contact
// @Tags         contacts
// @Param        id        path   string  true  "Contact id"
// @Param        property  query  string  true  "Property id"
// @Success      204
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("id"), c.QueryParam("property")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
