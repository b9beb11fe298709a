package booking

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/francistate/alx-travel-app-0x00/app/echoServer/validation"
	"github.com/francistate/alx-travel-app-0x00/model"
	bookingsvc "github.com/francistate/alx-travel-app-0x00/service/booking"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// gateError maps the booking gate's coded errors onto HTTP, keeping the
// field -> messages shape for everything the gate rejects.
func (h *Controller) gateError(c echo.Context, err error) error {
	body := echo.Map{
		"message": err.Error(),
		"errors":  map[string][]string{bookingsvc.Field(err): {err.Error()}},
	}
	switch bookingsvc.Code(err) {
	case bookingsvc.ErrBadInput, bookingsvc.ErrDateOrder,
		bookingsvc.ErrNotAvailable, bookingsvc.ErrCapacity:
		return c.JSON(http.StatusBadRequest, body)
	case bookingsvc.ErrDatesTaken:
		return c.JSON(http.StatusConflict, body)
	case bookingsvc.ErrListingNotFound, bookingsvc.ErrBookingNotFound:
		return c.JSON(http.StatusNotFound, body)
	case bookingsvc.ErrNotGuest:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	default:
		h.Log.Error("booking", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// POST /v1/bookings
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	b, err := h.Svc.Create(c.Request().Context(), uid, req)
	if err != nil {
		return h.gateError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /v1/bookings/my
func (h *Controller) MyBookings(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.MyBookings(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("booking history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// PUT /v1/bookings/:id/dates
func (h *Controller) UpdateStay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.UpdateBookingDatesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	b, err := h.Svc.UpdateStay(c.Request().Context(), uid, id, req)
	if err != nil {
		return h.gateError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// PATCH /v1/bookings/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.UpdateBookingStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  validation.Fields(err),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.UpdateStatus(c.Request().Context(), uid, id, model.BookingStatus(req.Status)); err != nil {
		return h.gateError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}
