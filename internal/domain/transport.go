package domain

import "context"

// ReplyHandler receives reply text pushed back by the remote reasoning
// service.
type ReplyHandler func(ctx context.Context, text string)

// BrainTransport forwards conversation content to the remote reasoning
// service and dispatches its replies.
type BrainTransport interface {
	// Chat forwards one utterance attributed to a user.
	Chat(ctx context.Context, text, userID, nickname string) error

	// SetReplyHandler registers the callback for inbound replies. Must be
	// called before Run.
	SetReplyHandler(h ReplyHandler)

	// Run connects and services the link until ctx is cancelled.
	Run(ctx context.Context) error

	Close() error
}
