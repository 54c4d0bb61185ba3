package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/metrics"
)

// Cooldown between forwarded events, so replies do not pile up faster
// than they can be spoken.
const defaultCooldown = 2 * time.Second

// Dispatcher admits live-room events into the queue and drains them to
// the reasoning service one at a time.
type Dispatcher struct {
	queue      *Queue
	filter     Filter
	brain      domain.BrainTransport
	priorities Priorities
	cooldown   time.Duration
	clock      clockwork.Clock
	logger     *slog.Logger
}

func NewDispatcher(brain domain.BrainTransport, clock clockwork.Clock, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queue:      NewQueue(clock),
		filter:     NewFilter(),
		brain:      brain,
		priorities: DefaultPriorities(),
		cooldown:   defaultCooldown,
		clock:      clock,
		logger:     logger.With("component", "ingest"),
	}
}

// OnDanmaku scores a chat message and queues it if it passes the
// filter. Low scorers are dropped silently.
func (d *Dispatcher) OnDanmaku(user, userID, text string) {
	score := d.filter.Score(text)
	if !d.filter.Admits(score) {
		metrics.IngestEventsTotal.WithLabelValues(string(EventDanmaku), "dropped").Inc()
		return
	}

	d.enqueue(d.priorities.Danmaku+score, Event{
		Type:    EventDanmaku,
		User:    user,
		UserID:  userID,
		Content: text,
	})
}

// OnGift queues a gift event. CoinType "silver" gifts are free and
// skipped.
func (d *Dispatcher) OnGift(user, userID, giftName string, num int, coinType string, totalCoin int64) {
	if coinType == "silver" {
		metrics.IngestEventsTotal.WithLabelValues(string(EventGift), "dropped").Inc()
		return
	}

	value := float64(totalCoin) / 1000
	d.enqueue(d.priorities.Gift, Event{
		Type:     EventGift,
		User:     user,
		UserID:   userID,
		Content:  fmt.Sprintf("赠送了 %s x %d (价值 %.1f 元)", giftName, num, value),
		GiftName: giftName,
		Num:      num,
		Price:    totalCoin,
	})
}

func (d *Dispatcher) OnGuardBuy(user, userID, guardName string, num int, price int64) {
	d.enqueue(d.priorities.Guard, Event{
		Type:     EventGuard,
		User:     user,
		UserID:   userID,
		Content:  fmt.Sprintf("开通了 %s 舰长", guardName),
		GiftName: guardName,
		Num:      num,
		Price:    price,
	})
}

func (d *Dispatcher) OnSuperChat(user, userID, text string, price int64) {
	d.enqueue(d.priorities.SuperChat, Event{
		Type:    EventSuperChat,
		User:    user,
		UserID:  userID,
		Content: text,
		Price:   price,
	})
}

func (d *Dispatcher) enqueue(priority int, event Event) {
	d.queue.Push(priority, event)
	metrics.IngestEventsTotal.WithLabelValues(string(event.Type), "queued").Inc()
	d.logger.Info("event queued",
		"type", event.Type, "priority", priority,
		"user", event.User, "content", truncate(event.Content, 20))
}

// Run drains the queue until ctx is cancelled, pausing between events.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("dispatch loop started")

	for {
		event, err := d.queue.Pop(ctx)
		if err != nil {
			return err
		}

		if err := d.brain.Chat(ctx, event.Content, event.UserID, event.User); err != nil {
			metrics.IngestEventsTotal.WithLabelValues(string(event.Type), "failed").Inc()
			d.logger.Warn("forwarding failed",
				"type", event.Type, "user", event.User, "error", err)
		} else {
			metrics.IngestEventsTotal.WithLabelValues(string(event.Type), "forwarded").Inc()
		}

		select {
		case <-d.clock.After(d.cooldown):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
