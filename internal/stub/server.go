// Package stub is an in-memory implementation of the two external HTTP
// contracts the console consumes: the auth service and the admin role
// service. It exists for local development and integration tests; the real
// backends are owned elsewhere.
package stub

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Options controls stub behaviour.
type Options struct {
	JWTSecret string
	// Seed preloads a few catalog roles so the console demos against data.
	Seed bool
	// Metrics mounts echoprometheus middleware and /metrics. Off in tests:
	// the default registry only tolerates one registration per process.
	Metrics bool
	// RateRPS enables per-IP rate limiting when positive.
	RateRPS   float64
	RateBurst int
}

type Server struct {
	echo  *echo.Echo
	log   zerolog.Logger
	users *userTable
	roles *roleTable
}

// NewServer builds the stub with all routes registered.
func NewServer(opts Options, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("skillgap_stub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	if opts.RateRPS > 0 {
		e.Use(rateLimit(opts.RateRPS, opts.RateBurst, log))
	}

	s := &Server{
		echo:  e,
		log:   log,
		users: newUserTable(),
		roles: newRoleTable(),
	}
	if opts.Seed {
		s.roles.seed()
	}

	auth := newAuthHandlers(s.users, opts.JWTSecret, log)
	roles := newRoleHandlers(s.roles, log)
	guard := bearerAuth(opts.JWTSecret)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/login", auth.login)
	e.POST("/auth/signup", auth.signup)
	e.PUT("/auth/profile", auth.updateProfile, guard)

	admin := e.Group("/api/admin", guard)
	admin.GET("/roles", roles.list)
	admin.POST("/roles", roles.create)
	admin.PUT("/roles/:roleId", roles.update)
	admin.PATCH("/roles/:roleId/toggle", roles.toggle)
	admin.DELETE("/roles/:roleId", roles.remove)

	return s
}

// Handler exposes the stub as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr and blocks.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}
