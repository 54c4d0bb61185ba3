package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/lingbai-i/YueLi/internal/errors"
	"github.com/lingbai-i/YueLi/internal/ingest"
)

type eventRequest struct {
	Type     string `json:"type"`
	User     string `json:"user"`
	UserID   string `json:"user_id"`
	Text     string `json:"text"`
	GiftName string `json:"gift_name"`
	Num      int    `json:"num"`
	CoinType string `json:"coin_type"`
	Price    int64  `json:"price"`
}

// handleEvent accepts one live-room event from an external hub and
// hands it to the ingest pipeline. Accepted means queued for scoring,
// not forwarded; low scorers may still be dropped.
func (s *Server) handleEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	switch ingest.EventType(req.Type) {
	case ingest.EventDanmaku:
		if req.Text == "" {
			return apperrors.ValidationError("text is required for danmaku events")
		}
		s.events.OnDanmaku(req.User, req.UserID, req.Text)
	case ingest.EventGift:
		if req.GiftName == "" {
			return apperrors.ValidationError("gift_name is required for gift events")
		}
		s.events.OnGift(req.User, req.UserID, req.GiftName, req.Num, req.CoinType, req.Price)
	case ingest.EventGuard:
		if req.GiftName == "" {
			return apperrors.ValidationError("gift_name is required for guard events")
		}
		s.events.OnGuardBuy(req.User, req.UserID, req.GiftName, req.Num, req.Price)
	case ingest.EventSuperChat:
		if req.Text == "" {
			return apperrors.ValidationError("text is required for super_chat events")
		}
		s.events.OnSuperChat(req.User, req.UserID, req.Text, req.Price)
	default:
		return apperrors.ValidationError(fmt.Sprintf("unknown event type %q", req.Type))
	}

	return c.NoContent(http.StatusAccepted)
}
