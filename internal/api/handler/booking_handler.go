package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/core/ports"
)

type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Book records a booking request, attributed to the caller or to a guest.
//
// @Summary      Book a service
// @Tags         bookings
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      ports.BookingInput  true  "Booking request"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /book [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var in ports.BookingInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	b, err := h.service.Submit(c.Request().Context(), in, currentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bookingResponse{Message: "booking received", Booking: b})
}

// Admin lists every booking. Admins only.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {object}  bookingListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /admin [get]
func (h *BookingHandler) Admin(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context(), currentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{Bookings: bookings, Count: len(bookings)})
}
