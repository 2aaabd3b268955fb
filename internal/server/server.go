// Package server exposes the question router and seating views over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ersonp/datask-core/internal/application/handlers"
	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/services"
)

// reEmpCode recognizes canonical employee codes like E10001.
var reEmpCode = regexp.MustCompile(`^E\d+$`)

// Server wires the application handlers into an Echo instance.
type Server struct {
	echo    *echo.Echo
	log     *zap.Logger
	ask     *handlers.AskHandler
	seatmap *handlers.SeatmapHandler
	usage   *handlers.UsageHandler
	faq     *handlers.FAQHandler
}

// New creates a server. faq may be nil, in which case the FAQ endpoint
// reports 503.
func New(log *zap.Logger, ask *handlers.AskHandler, seatmap *handlers.SeatmapHandler, usage *handlers.UsageHandler, faq *handlers.FAQHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		log:     log,
		ask:     ask,
		seatmap: seatmap,
		usage:   usage,
		faq:     faq,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.Use(s.requestLogger)

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.POST("/ask", s.handleAsk)
	s.echo.GET("/seatmap", s.handleSeatmap)
	s.echo.GET("/seats/usage", s.handleSeatUsage)
	s.echo.GET("/employees/:code/usage", s.handleEmployeeUsage)
	s.echo.POST("/faq/search", s.handleFAQSearch)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.log.Info("request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}

// Start begins serving on the given port and blocks until shutdown.
func (s *Server) Start(port string) error {
	return s.echo.Start(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Outcome *entities.Outcome   `json:"outcome"`
	Table   *entities.ResultSet `json:"table,omitempty"`
}

// handleAsk routes one question. Rejected and failed questions still
// return 200 with an error-kind outcome; the outcome is the answer.
func (s *Server) handleAsk(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result := s.ask.Handle(c.Request().Context(), req.Question)
	return c.JSON(http.StatusOK, askResponse{
		Outcome: result.Outcome,
		Table:   result.Table,
	})
}

func (s *Server) handleSeatmap(c echo.Context) error {
	showNames := c.QueryParam("names") == "true"

	columns := services.DefaultSeatmapColumns
	if raw := c.QueryParam("columns"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "columns must be a positive integer")
		}
		columns = parsed
	}

	view, err := s.seatmap.Handle(c.Request().Context(), time.Now(), columns, showNames)
	if err != nil {
		s.log.Error("building seatmap", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "building seatmap")
	}
	return c.JSON(http.StatusOK, view)
}

func (s *Server) handleSeatUsage(c echo.Context) error {
	usage, err := s.usage.PerSeat(c.Request().Context())
	if err != nil {
		s.log.Error("computing seat usage", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "computing seat usage")
	}
	return c.JSON(http.StatusOK, usage)
}

// handleEmployeeUsage accepts either a canonical employee code or a name
// fragment in the path; fragments go through the tiered resolver.
func (s *Server) handleEmployeeUsage(c echo.Context) error {
	param := c.Param("code")
	code, name := param, ""
	if !reEmpCode.MatchString(param) {
		code, name = "", param
	}

	usage, err := s.usage.MonthlyByEmployee(c.Request().Context(), code, name)
	if err != nil {
		if errors.Is(err, entities.ErrEmployeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no matching employee")
		}
		s.log.Error("computing employee usage", zap.Error(err), zap.String("code", param))
		return echo.NewHTTPError(http.StatusInternalServerError, "computing employee usage")
	}
	return c.JSON(http.StatusOK, usage)
}

type faqSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) handleFAQSearch(c echo.Context) error {
	if s.faq == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "FAQ search is not configured")
	}

	var req faqSearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	docs, err := s.faq.Search(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		s.log.Error("searching FAQ", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "searching FAQ")
	}
	return c.JSON(http.StatusOK, docs)
}
