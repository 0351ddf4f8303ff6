package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/api/metrics"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for complaint operations.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// List handles GET /complaints — the role-filtered listing.
//
// @Summary      List complaints visible to the caller
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.ComplaintDetail
// @Failure      401  {object}  errorResponse
// @Router       /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	details, err := h.service.List(c.Request().Context(), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// Create handles POST /complaints — multipart form with up to five images.
//
// @Summary      File a new complaint
// @Tags         complaints
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Complaint title"
// @Param        category     formData  string  true   "Complaint category"
// @Param        description  formData  string  true   "Description"
// @Param        roomNumber   formData  string  false  "Room number override"
// @Param        images       formData  file    false  "Up to 5 images"
// @Success      201  {object}  ports.ComplaintDetail
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	input := ports.CreateComplaintInput{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		RoomNumber:  c.FormValue("roomNumber"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > domain.MaxComplaintImages {
			return echo.NewHTTPError(http.StatusBadRequest, "at most 5 images allowed")
		}
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "unreadable image upload")
			}
			defer f.Close()
			input.Images = append(input.Images, ports.ImageUpload{Filename: fh.Filename, Content: f})
		}
	}

	detail, err := h.service.Create(c.Request().Context(), actorID, input)
	if err != nil {
		return err
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(detail.Category).Inc()
	return c.JSON(http.StatusCreated, detail)
}

// Get handles GET /complaints/:id.
//
// @Summary      Get a single complaint
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Complaint id"
// @Success      200  {object}  ports.ComplaintDetail
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Transition handles PUT /complaints/:id — the lifecycle transition.
//
// @Summary      Update a complaint's status
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Complaint id"
// @Param        body  body      transitionRequest  true  "New status and comment"
// @Success      200   {object}  ports.ComplaintDetail
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /complaints/{id} [put]
func (h *ComplaintHandler) Transition(c echo.Context) error {
	actorID, err := ctxActorID(c)
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Transition(c.Request().Context(), actorID, c.Param("id"), domain.ComplaintStatus(req.Status), req.Comment)
	if err != nil {
		metrics.ComplaintTransitionRejectedTotal.WithLabelValues(transitionRejectReason(err)).Inc()
		return err
	}

	metrics.ComplaintTransitionsTotal.WithLabelValues(string(detail.Status)).Inc()
	return c.JSON(http.StatusOK, detail)
}

func transitionRejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrComplaintClosed):
		return "closed"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	default:
		return "error"
	}
}
