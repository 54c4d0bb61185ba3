package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lingbai-i/YueLi/internal/domain"
	apperrors "github.com/lingbai-i/YueLi/internal/errors"
	"github.com/lingbai-i/YueLi/internal/platform/version"
)

type decideRequest struct {
	ConversationID  string `json:"conversation_id"`
	RequestedAction string `json:"requested_action"`
	Text            string `json:"text"`
}

type decideResponse struct {
	Action      string   `json:"action"`
	Score       float64  `json:"score"`
	Reason      string   `json:"reason"`
	Trace       []string `json:"trace,omitempty"`
	Substituted bool     `json:"substituted"`
}

func (s *Server) handleDecide(c echo.Context) error {
	var req decideRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.ConversationID == "" {
		return apperrors.ValidationError("conversation_id is required")
	}

	decision, err := s.app.PerformMotion(c.Request().Context(), req.ConversationID, req.RequestedAction, req.Text)
	if err != nil {
		return apperrors.InternalError("decision failed", err).
			WithContext("conversation_id", req.ConversationID)
	}

	substituted := req.RequestedAction != "" &&
		decision.Action != "" &&
		decision.Action != req.RequestedAction

	return c.JSON(http.StatusOK, decideResponse{
		Action:      decision.Action,
		Score:       decision.Score,
		Reason:      decision.Reason,
		Trace:       decision.Trace,
		Substituted: substituted,
	})
}

type actionEntry struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	MinIntimacy int    `json:"min_intimacy"`
}

func (s *Server) handleActions(c echo.Context) error {
	entries := make([]actionEntry, 0, len(s.actions))
	for _, action := range s.actions {
		entries = append(entries, actionEntry{
			Key:         action.Key,
			Label:       action.Label,
			MinIntimacy: action.MinIntimacy,
		})
	}
	return c.JSON(http.StatusOK, entries)
}

func (s *Server) handleGetMood(c echo.Context) error {
	conversationID := c.Param("id")

	vector, err := s.store.Get(c.Request().Context(), conversationID)
	if err != nil {
		return apperrors.InternalError("reading mood failed", err).
			WithContext("conversation_id", conversationID)
	}
	return c.JSON(http.StatusOK, vector)
}

type adjustMoodRequest struct {
	Delta map[string]float64 `json:"delta"`
}

func (s *Server) handleAdjustMood(c echo.Context) error {
	conversationID := c.Param("id")

	var req adjustMoodRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if len(req.Delta) == 0 {
		return apperrors.ValidationError("delta must not be empty")
	}

	delta := make(domain.EmotionDelta, len(req.Delta))
	for name, value := range req.Delta {
		kind, ok := domain.ParseEmotionKind(name)
		if !ok {
			return apperrors.ValidationError(fmt.Sprintf("unknown emotion %q", name))
		}
		delta[kind] = value
	}

	if err := s.store.Update(c.Request().Context(), conversationID, delta); err != nil {
		return apperrors.InternalError("updating mood failed", err).
			WithContext("conversation_id", conversationID)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, version.Get())
}
