package ingest

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingbai-i/YueLi/internal/domain"
)

type chatCall struct {
	Text     string
	UserID   string
	Nickname string
}

type fakeBrain struct {
	mu    sync.Mutex
	calls []chatCall
	sent  chan chatCall
	err   error
}

func newFakeBrain() *fakeBrain {
	return &fakeBrain{sent: make(chan chatCall, 16)}
}

func (b *fakeBrain) Chat(ctx context.Context, text, userID, nickname string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	call := chatCall{Text: text, UserID: userID, Nickname: nickname}
	b.calls = append(b.calls, call)
	b.sent <- call
	return nil
}

func (b *fakeBrain) SetReplyHandler(domain.ReplyHandler) {}
func (b *fakeBrain) Run(ctx context.Context) error       { <-ctx.Done(); return ctx.Err() }
func (b *fakeBrain) Close() error                        { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestOnDanmaku_DropsBelowThreshold(t *testing.T) {
	brain := newFakeBrain()
	d := NewDispatcher(brain, clockwork.NewFakeClock(), quietLogger())

	// Single-character message only earns the base score.
	d.OnDanmaku("路人", "u1", "早")
	assert.Zero(t, d.queue.Len())

	d.OnDanmaku("路人", "u1", "月璃今天唱歌吗？")
	assert.Equal(t, 1, d.queue.Len())
}

func TestOnGift_SilverGiftsSkipped(t *testing.T) {
	brain := newFakeBrain()
	d := NewDispatcher(brain, clockwork.NewFakeClock(), quietLogger())

	d.OnGift("白嫖怪", "u2", "辣条", 10, "silver", 0)
	assert.Zero(t, d.queue.Len())

	d.OnGift("金主", "u3", "小花花", 2, "gold", 2000)
	require.Equal(t, 1, d.queue.Len())

	event, err := d.queue.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EventGift, event.Type)
	assert.Equal(t, "赠送了 小花花 x 2 (价值 2.0 元)", event.Content)
}

func TestOnGuardBuy_RendersContent(t *testing.T) {
	brain := newFakeBrain()
	d := NewDispatcher(brain, clockwork.NewFakeClock(), quietLogger())

	d.OnGuardBuy("舰长大人", "u4", "舰长", 1, 198000)

	event, err := d.queue.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EventGuard, event.Type)
	assert.Equal(t, "开通了 舰长 舰长", event.Content)
}

func TestRun_PaidEventsJumpTheQueue(t *testing.T) {
	brain := newFakeBrain()
	clock := clockwork.NewFakeClock()
	d := NewDispatcher(brain, clock, quietLogger())

	d.OnDanmaku("观众甲", "u1", "月璃今天唱歌吗？")
	d.OnSuperChat("金主", "u5", "点一首歌可以吗", 30)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	first := waitCall(t, brain)
	assert.Equal(t, "点一首歌可以吗", first.Text)
	assert.Equal(t, "u5", first.UserID)
	assert.Equal(t, "金主", first.Nickname)

	// The cooldown gates the next forward.
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(defaultCooldown)

	second := waitCall(t, brain)
	assert.Equal(t, "月璃今天唱歌吗？", second.Text)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func waitCall(t *testing.T, brain *fakeBrain) chatCall {
	t.Helper()
	select {
	case call := <-brain.sent:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("brain never received a chat call")
		return chatCall{}
	}
}
