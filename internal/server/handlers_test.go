package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingbai-i/YueLi/internal/catalog"
	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/emotion"
)

type stubApp struct {
	decision domain.Decision
	err      error

	gotConversation string
	gotRequested    string
	gotText         string
}

func (s *stubApp) PerformMotion(_ context.Context, conversationID, requested, text string) (domain.Decision, error) {
	s.gotConversation = conversationID
	s.gotRequested = requested
	s.gotText = text
	return s.decision, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(sink{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type sink struct{}

func (sink) Write(p []byte) (int, error) { return len(p), nil }

type stubSink struct {
	danmaku    []string
	gifts      []string
	guards     []string
	superChats []string
}

func (s *stubSink) OnDanmaku(user, userID, text string) {
	s.danmaku = append(s.danmaku, text)
}

func (s *stubSink) OnGift(user, userID, giftName string, num int, coinType string, totalCoin int64) {
	s.gifts = append(s.gifts, giftName)
}

func (s *stubSink) OnGuardBuy(user, userID, guardName string, num int, price int64) {
	s.guards = append(s.guards, guardName)
}

func (s *stubSink) OnSuperChat(user, userID, text string, price int64) {
	s.superChats = append(s.superChats, text)
}

func newTestServer(app *stubApp) (*Server, *emotion.MemoryStore) {
	srv, store, _ := newTestServerWithSink(app)
	return srv, store
}

func newTestServerWithSink(app *stubApp) (*Server, *emotion.MemoryStore, *stubSink) {
	store := emotion.NewMemoryStore(clockwork.NewFakeClock())
	sink := &stubSink{}
	return New("8080", app, store, catalog.Actions, sink, testLogger()), store, sink
}

func doRequest(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echoContentType, echoJSON)
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

const (
	echoContentType = "Content-Type"
	echoJSON        = "application/json"
)

func TestHandleDecide_ReturnsDecision(t *testing.T) {
	app := &stubApp{decision: domain.Decision{
		Action: "heart_eyes",
		Score:  68.25,
		Reason: "Score: 68.25 [EmoRes(+38.2), TextPosMatch]",
		Trace:  []string{"EmoRes(+38.2)", "TextPosMatch"},
	}}
	srv, _ := newTestServer(app)

	rec := doRequest(srv, http.MethodPost, "/api/decide",
		`{"conversation_id":"s1","requested_action":"happy","text":"我好喜欢你,太开心了"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp decideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "heart_eyes", resp.Action)
	assert.InDelta(t, 68.25, resp.Score, 1e-9)
	assert.Equal(t, "Score: 68.25 [EmoRes(+38.2), TextPosMatch]", resp.Reason)
	assert.True(t, resp.Substituted)

	assert.Equal(t, "s1", app.gotConversation)
	assert.Equal(t, "happy", app.gotRequested)
	assert.Equal(t, "我好喜欢你,太开心了", app.gotText)
}

func TestHandleDecide_NotSubstitutedWhenRequestedWins(t *testing.T) {
	app := &stubApp{decision: domain.Decision{Action: "happy", Score: 40}}
	srv, _ := newTestServer(app)

	rec := doRequest(srv, http.MethodPost, "/api/decide",
		`{"conversation_id":"s1","requested_action":"happy","text":"开心"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp decideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Substituted)
}

func TestHandleDecide_MissingConversationID(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/decide", `{"text":"你好"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "conversation_id is required")
}

func TestHandleDecide_EngineErrorIs500(t *testing.T) {
	app := &stubApp{err: assert.AnError}
	srv, _ := newTestServer(app)

	rec := doRequest(srv, http.MethodPost, "/api/decide",
		`{"conversation_id":"s1","text":"你好"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleActions_ListsCatalogInOrder(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodGet, "/api/actions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []actionEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, len(catalog.Actions))

	assert.Equal(t, "angry", entries[0].Key)
	assert.Equal(t, "生气", entries[0].Label)
	assert.Equal(t, "neutral", entries[len(entries)-1].Key)
}

func TestHandleGetMood_FreshConversationIsNeutral(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodGet, "/api/conversations/s1/mood", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var vector domain.EmotionVector
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vector))
	assert.Equal(t, domain.NeutralVector(), vector)
}

func TestHandleAdjustMood_AppliesDelta(t *testing.T) {
	srv, store := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/conversations/s1/mood",
		`{"delta":{"joy":0.4,"anger":0.1}}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	vector, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, vector.Joy, 1e-9)
	assert.InDelta(t, 0.1, vector.Anger, 1e-9)
}

func TestHandleAdjustMood_UnknownEmotionIs400(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/conversations/s1/mood",
		`{"delta":{"jealousy":0.4}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "jealousy")
}

func TestHandleAdjustMood_EmptyDeltaIs400(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/conversations/s1/mood", `{"delta":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpointServes(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleEvent_RoutesByType(t *testing.T) {
	srv, _, sink := newTestServerWithSink(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/events",
		`{"type":"danmaku","user":"观众甲","user_id":"u1","text":"月璃好可爱"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/events",
		`{"type":"gift","user":"金主","user_id":"u2","gift_name":"小花花","num":2,"coin_type":"gold","price":2000}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/events",
		`{"type":"guard","user":"舰长","user_id":"u3","gift_name":"舰长","num":1,"price":198000}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/api/events",
		`{"type":"super_chat","user":"土豪","user_id":"u4","text":"点歌","price":30}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Equal(t, []string{"月璃好可爱"}, sink.danmaku)
	assert.Equal(t, []string{"小花花"}, sink.gifts)
	assert.Equal(t, []string{"舰长"}, sink.guards)
	assert.Equal(t, []string{"点歌"}, sink.superChats)
}

func TestHandleEvent_UnknownTypeIs400(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/events", `{"type":"follow","user":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEvent_DanmakuWithoutText(t *testing.T) {
	srv, _ := newTestServer(&stubApp{})

	rec := doRequest(srv, http.MethodPost, "/api/events", `{"type":"danmaku","user":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
