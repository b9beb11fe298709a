package listing

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/francistate/alx-travel-app-0x00/app/echoServer/validation"
	"github.com/francistate/alx-travel-app-0x00/model"
	listingsvc "github.com/francistate/alx-travel-app-0x00/service/listing"
)

type Controller struct {
	Svc listingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

func listingID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// POST /v1/listings
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateListingReq
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

	l, err := h.Svc.Create(c.Request().Context(), uid, req)
	if err != nil {
		switch listingsvc.Code(err) {
		case listingsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("listing create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, l)
}

// GET /v1/listings
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("listing list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/listings/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := listingID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	l, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		switch listingsvc.Code(err) {
		case listingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		default:
			h.Log.Error("listing detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, l)
}

// PUT /v1/listings/:id
func (h *Controller) Update(c echo.Context) error {
	id, ok := listingID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.UpdateListingReq
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

	l, err := h.Svc.Update(c.Request().Context(), uid, id, req)
	if err != nil {
		switch listingsvc.Code(err) {
		case listingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		case listingsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case listingsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("listing update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, l)
}

// DELETE /v1/listings/:id
func (h *Controller) Delete(c echo.Context) error {
	id, ok := listingID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Delete(c.Request().Context(), uid, id); err != nil {
		switch listingsvc.Code(err) {
		case listingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "listing not found"})
		case listingsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		default:
			h.Log.Error("listing delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
