package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// HostelHandler serves the public hostel listing and the admin management
// endpoints.
type HostelHandler struct {
	service ports.HostelService
}

func NewHostelHandler(service ports.HostelService) *HostelHandler {
	return &HostelHandler{service: service}
}

type hostelRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Boys Girls"`
}

// List handles GET /hostels. Public: registration forms need the hostel
// names before the caller has an account.
//
// @Summary      List active hostels with occupancy and complaint counts
// @Tags         hostels
// @Produce      json
// @Success      200  {array}  ports.HostelListEntry
// @Router       /hostels [get]
func (h *HostelHandler) List(c echo.Context) error {
	entries, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /admin/hostels.
//
// @Summary      Create a hostel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hostelRequest  true  "Hostel details"
// @Success      201   {object}  domain.Hostel
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/hostels [post]
func (h *HostelHandler) Create(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	var req hostelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hostel, err := h.service.Create(c.Request().Context(), actorID, ports.HostelInput{Name: req.Name, Type: req.Type})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hostel)
}

// Update handles PUT /admin/hostels/:id.
//
// @Summary      Update a hostel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Hostel id"
// @Param        body  body      hostelRequest  true  "Hostel details"
// @Success      200   {object}  domain.Hostel
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/hostels/{id} [put]
func (h *HostelHandler) Update(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	var req hostelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hostel, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.HostelInput{Name: req.Name, Type: req.Type})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hostel)
}

// ToggleStatus handles PUT /admin/hostels/:id/toggle-status.
//
// @Summary      Activate or deactivate a hostel
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hostel id"
// @Success      200  {object}  domain.Hostel
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/hostels/{id}/toggle-status [put]
func (h *HostelHandler) ToggleStatus(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	hostel, err := h.service.ToggleStatus(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hostel)
}

// Delete handles DELETE /admin/hostels/:id.
//
// @Summary      Delete a hostel
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Hostel id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/hostels/{id} [delete]
func (h *HostelHandler) Delete(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
