// Package ingest scores live-room events, orders them in a priority
// queue, and forwards the survivors to the reasoning service.
package ingest

type EventType string

const (
	EventDanmaku   EventType = "danmaku"
	EventGift      EventType = "gift"
	EventSuperChat EventType = "super_chat"
	EventGuard     EventType = "guard"
)

// Event is one normalized live-room occurrence. Content carries the
// text that will be forwarded to the reasoning service, already
// rendered for gift and guard events.
type Event struct {
	Type    EventType
	User    string
	UserID  string
	Content string

	GiftName string
	Num      int
	Price    int64
}

// Priorities are the base queue priorities per event type. Danmaku
// adds the filter score on top of its base; paid events use theirs
// as-is.
type Priorities struct {
	Danmaku   int
	Gift      int
	Guard     int
	SuperChat int
}

func DefaultPriorities() Priorities {
	return Priorities{
		Danmaku:   10,
		Gift:      100,
		Guard:     150,
		SuperChat: 200,
	}
}
