package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmp/property-portal/internal/core/domain"
	"github.com/mmp/property-portal/internal/core/ports"
)

// UserHandler serves admin-only user administration.
type UserHandler struct {
	service ports.UserAdminService
}

func NewUserHandler(service ports.UserAdminService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.Summary
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	users, err := h.service.List(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  domain.Summary
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req createUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), claims, ports.NewUserInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		Properties: req.Properties,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user.Summary())
}

// Update godoc
// @Summary      Update user
// @Description  Replaces password, role and/or property grant.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to replace"
// @Success      200       {object}  statusResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	in := ports.UserUpdateInput{
		Password:   req.Password,
		Properties: req.Properties,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}
	if err := h.service.Update(c.Request().Context(), claims, c.Param("username"), in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse)
}

// Delete godoc
// @Summary      Delete user
// @Tags         users
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), claims, c.Param("username")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
