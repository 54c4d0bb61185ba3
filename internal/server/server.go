// Package server exposes the decision engine and emotion state over
// HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/lingbai-i/YueLi/internal/domain"
	apperrors "github.com/lingbai-i/YueLi/internal/errors"
	"github.com/lingbai-i/YueLi/internal/platform/correlation"
)

// DecisionService is the slice of the application layer the handlers
// need.
type DecisionService interface {
	PerformMotion(ctx context.Context, conversationID, requested, text string) (domain.Decision, error)
}

// EventSink accepts live-room events pushed by an external hub.
type EventSink interface {
	OnDanmaku(user, userID, text string)
	OnGift(user, userID, giftName string, num int, coinType string, totalCoin int64)
	OnGuardBuy(user, userID, guardName string, num int, price int64)
	OnSuperChat(user, userID, text string, price int64)
}

type Server struct {
	echo      *echo.Echo
	port      string
	app       DecisionService
	store     domain.EmotionStore
	actions   []domain.ActionDescriptor
	events    EventSink
	logger    *slog.Logger
	startTime time.Time
}

func New(port string, app DecisionService, store domain.EmotionStore, actions []domain.ActionDescriptor, events EventSink, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(traceMiddleware())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		port:      port,
		app:       app,
		store:     store,
		actions:   actions,
		events:    events,
		logger:    logger.With("component", "server"),
		startTime: time.Now(),
	}
	srv.registerRoutes()
	return srv
}

// traceMiddleware stamps every request context with a trace ID so the
// correlation log handler can group its lines.
func traceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := correlation.WithID(req.Context(), correlation.NewID())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting http server", "port", s.port)
	return s.echo.Start(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
