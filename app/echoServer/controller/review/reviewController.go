package review

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/francistate/alx-travel-app-0x00/app/echoServer/validation"
	"github.com/francistate/alx-travel-app-0x00/model"
	reviewsvc "github.com/francistate/alx-travel-app-0x00/service/review"
)

type Controller struct {
	Svc reviewsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/listings/:id/reviews
func (h *Controller) Create(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req model.CreateReviewReq
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

	rv, err := h.Svc.Create(c.Request().Context(), uid, listingID, req)
	if err != nil {
		body := echo.Map{
			"message": err.Error(),
			"errors":  map[string][]string{reviewsvc.Field(err): {err.Error()}},
		}
		switch reviewsvc.Code(err) {
		case reviewsvc.ErrBadRating, reviewsvc.ErrShortComment, reviewsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, body)
		case reviewsvc.ErrDuplicate:
			return c.JSON(http.StatusConflict, body)
		case reviewsvc.ErrListingNotFound, reviewsvc.ErrBookingNotFound:
			return c.JSON(http.StatusNotFound, body)
		default:
			h.Log.Error("review create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, rv)
}

// GET /v1/listings/:id/reviews
func (h *Controller) ListByListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	rows, err := h.Svc.ListByListing(c.Request().Context(), listingID)
	if err != nil {
		h.Log.Error("review list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
