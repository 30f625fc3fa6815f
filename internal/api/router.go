package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/wanderlust/tourism-site/docs"
	"github.com/wanderlust/tourism-site/internal/api/handler"
	"github.com/wanderlust/tourism-site/internal/api/middleware"
	"github.com/wanderlust/tourism-site/internal/core/domain"
	"github.com/wanderlust/tourism-site/internal/core/ports"
)

const siteName = "Wanderlust Travel"

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Bookings ports.BookingService
	Contacts ports.ContactService

	Sessions    ports.SessionIssuer
	Revocations ports.RevocationList
	Cookie      middleware.SessionCookie
	CSRF        bool

	Destinations func() []domain.Destination
	Readiness    map[string]handler.Pinger

	// Metrics defaults to the global Prometheus registry.
	Metrics *prometheus.Registry
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(prometheusMiddleware(deps.Metrics))
	if deps.CSRF {
		e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			Skipper:        skipInfraPaths,
			TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf_token",
			ContextKey:     handler.CSRFContextKey,
			CookieName:     "_csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   deps.Cookie.Secure,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}
	e.Use(middleware.Session(deps.Cookie, deps.Sessions, deps.Revocations, deps.Log))

	// --- Handlers ---
	site := handler.NewSiteHandler(siteName, deps.Destinations)
	auth := handler.NewAuthHandler(deps.Auth, deps.Sessions, deps.Cookie)
	bookings := handler.NewBookingHandler(deps.Bookings)
	contact := handler.NewContactHandler(deps.Contacts)
	health := handler.NewHealthHandler(deps.Readiness)

	// --- Site ---
	e.GET("/", site.Home)
	e.GET("/destinations", site.Destinations)

	// --- Auth ---
	e.GET("/login", auth.LoginForm)
	e.POST("/login", auth.Login)
	e.GET("/register", auth.RegisterForm)
	e.POST("/register", auth.Register)
	e.POST("/logout", auth.Logout)

	// --- Intake ---
	e.POST("/book", bookings.Book)
	e.POST("/contact", contact.Contact)
	e.GET("/admin", bookings.Admin)

	// --- Infrastructure ---
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler(deps.Metrics))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		Skipper:      skipInfraPaths,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func prometheusMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	if reg != nil {
		registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tourism",
		Registerer: registerer,
		Skipper:    skipInfraPaths,
	})
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func skipInfraPaths(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == "/metrics" || strings.HasPrefix(p, "/health") || strings.HasPrefix(p, "/swagger")
}
