package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Decision API
	s.echo.POST("/api/decide", s.handleDecide)
	s.echo.GET("/api/actions", s.handleActions)

	// Live-room event intake
	s.echo.POST("/api/events", s.handleEvent)

	// Mood API
	s.echo.GET("/api/conversations/:id/mood", s.handleGetMood)
	s.echo.POST("/api/conversations/:id/mood", s.handleAdjustMood)
}
