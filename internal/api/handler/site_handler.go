package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/tourism-site/internal/core/domain"
)

// SiteHandler serves the public informational pages.
type SiteHandler struct {
	name         string
	destinations func() []domain.Destination
}

func NewSiteHandler(name string, destinations func() []domain.Destination) *SiteHandler {
	return &SiteHandler{name: name, destinations: destinations}
}

// Home describes the site and the caller's session.
//
// @Summary      Home page
// @Tags         site
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       / [get]
func (h *SiteHandler) Home(c echo.Context) error {
	s := currentSession(c)
	links := map[string]string{
		"destinations": "/destinations",
		"book":         "/book",
		"contact":      "/contact",
	}
	if s.Authenticated() {
		links["logout"] = "/logout"
		if s.Role == domain.RoleAdmin {
			links["admin"] = "/admin"
		}
	} else {
		links["login"] = "/login"
		links["register"] = "/register"
	}

	return c.JSON(http.StatusOK, homeResponse{
		Site:     h.name,
		Services: domain.ServiceKinds,
		Links:    links,
		User:     sessionUserOf(s),
	})
}

// Destinations lists the travel catalogue.
//
// @Summary      List destinations
// @Tags         site
// @Produce      json
// @Success      200  {object}  destinationsResponse
// @Router       /destinations [get]
func (h *SiteHandler) Destinations(c echo.Context) error {
	return c.JSON(http.StatusOK, destinationsResponse{Destinations: h.destinations()})
}
