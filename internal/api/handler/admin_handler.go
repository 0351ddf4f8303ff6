package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// AdminHandler serves the admin user-management endpoints.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ListUsers handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ToggleUserStatus handles PUT /admin/users/:id/toggle-status.
//
// @Summary      Activate or deactivate a user account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/toggle-status [put]
func (h *AdminHandler) ToggleUserStatus(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.ToggleStatus(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ResetUserPassword handles PUT /admin/users/:id/reset-password.
//
// @Summary      Reset a user's password
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                true  "User id"
// @Param        body  body  resetPasswordRequest  true  "New password"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/reset-password [put]
func (h *AdminHandler) ResetUserPassword(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ResetPassword(c.Request().Context(), actorID, c.Param("id"), req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
