package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Contact accepts a message for the staff.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      ports.ContactInput  true  "Contact message"
// @Success      202   {object}  contactResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Contact(c echo.Context) error {
	var in ports.ContactInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	msg, err := h.service.Submit(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, contactResponse{Message: "thank you, we will get back to you", ID: msg.ID})
}
