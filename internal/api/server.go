// Package api serves the salary engine over a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/logging"
	"github.com/rgehrsitz/ctcgo/internal/solver"
)

// Server wires the calculation engines to echo routes
type Server struct {
	Registry *domain.RegimeRegistry
	Engine   *calculation.Engine
	Solver   *solver.Solver
	Compare  *compare.CompareEngine
	Logger   *slog.Logger

	echo *echo.Echo
}

// NewServer builds a server over reg (nil uses the built-in regimes)
func NewServer(reg *domain.RegimeRegistry, logger *slog.Logger) *Server {
	if reg == nil {
		reg = calculation.NewDefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}

	engine := calculation.NewEngine(reg)
	engine.SetLogger(logging.NewEngineLogger(logger))

	s := &Server{
		Registry: reg,
		Engine:   engine,
		Solver:   solver.NewDefaultSolver(engine),
		Compare:  compare.NewCompareEngine(engine),
		Logger:   logger,
		echo:     echo.New(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(requestLogger(logger))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.health)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/regimes", s.listRegimes)
	v1.GET("/cities", s.listCities)
	v1.POST("/tax", s.computeTax)

	v1.POST("/salary/forward", s.forward)
	v1.POST("/salary/reverse", s.reverse)
	v1.POST("/salary/reverse/regimes", s.reverseAcrossRegimes)
	v1.POST("/salary/regimes", s.compareRegimes)

	v1.POST("/compare/offers", s.compareOffers)
	v1.POST("/compare/hike", s.projectHike)

	st := v1.Group("/statutory")
	st.POST("/pf", s.pf)
	st.POST("/gratuity", s.gratuity)
	st.POST("/hra", s.hra)
	st.POST("/bonus", s.bonus)
	st.POST("/lta", s.lta)
	st.POST("/cost-of-living", s.costOfLiving)
}

// ServeHTTP makes the server usable as a plain http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	s.Logger.Info("server starting", "addr", addr, "default_variant", s.Registry.DefaultVariant)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestLogger logs each HTTP request with its final status
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			)
			return nil
		}
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Message: "ctcgo API"})
}
