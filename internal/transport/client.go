package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lingbai-i/YueLi/internal/domain"
	"github.com/lingbai-i/YueLi/internal/metrics"
	"github.com/lingbai-i/YueLi/internal/platform/retry"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
)

var reconnectPolicy = retry.Policy{
	MaxAttempts:    5,
	InitialBackoff: 500 * time.Millisecond,
	MaxBackoff:     10 * time.Second,
}

// Client keeps a websocket session to the reasoning service open,
// reconnecting with backoff when the link drops. Replies pushed by the
// service are dispatched to the registered handler.
type Client struct {
	url      string
	token    string
	platform string
	groupID  string
	logger   *slog.Logger
	dialer   *websocket.Dialer

	handler domain.ReplyHandler

	mu      sync.Mutex
	conn    *websocket.Conn
	closed  bool
	closeCh chan struct{}
}

func NewClient(url, token, platform, groupID string, logger *slog.Logger) *Client {
	return &Client{
		url:      url,
		token:    token,
		platform: platform,
		groupID:  groupID,
		logger:   logger.With("component", "transport"),
		dialer:   &websocket.Dialer{HandshakeTimeout: dialTimeout},
		closeCh:  make(chan struct{}),
	}
}

func (c *Client) SetReplyHandler(h domain.ReplyHandler) {
	c.handler = h
}

// Chat forwards one utterance. Returns ErrTransportNotReady while the
// link is down.
func (c *Client) Chat(ctx context.Context, text, userID, nickname string) error {
	env := NewChatEnvelope(c.platform, c.groupID, text, userID, nickname)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrTransportClosed
	}
	if c.conn == nil {
		return domain.ErrTransportNotReady
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(env); err != nil {
		return err
	}
	metrics.TransportMessagesTotal.WithLabelValues("sent").Inc()
	return nil
}

// Run services the link until ctx is cancelled or Close is called. Each
// dial cycle retries with backoff; a connection drop starts a new cycle.
func (c *Client) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.closeCh:
			return nil
		default:
		}

		conn, err := c.dial(ctx)
		if err != nil {
			c.logger.Error("giving up connecting to reasoning service", "error", err)
			return err
		}

		c.setConn(conn)
		metrics.TransportConnected.Set(1)
		c.logger.Info("connected to reasoning service", "url", c.url)

		c.readLoop(ctx, conn)

		c.setConn(nil)
		metrics.TransportConnected.Set(0)
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.closeCh)
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	return nil
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	policy := reconnectPolicy
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		c.logger.Warn("dial failed, retrying",
			"attempt", attempt, "backoff", backoff, "error", err)
	}

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}
	header.Set("X-Platform", c.platform)

	return retry.Do(ctx, policy,
		func(error) retry.Action { return retry.Retry },
		func() (*websocket.Conn, error) {
			conn, _, err := c.dialer.DialContext(ctx, c.url, header)
			return conn, err
		})
}

// readLoop blocks reading envelopes until the connection fails or ctx is
// cancelled. Cancellation closes the connection to unblock the read.
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-c.closeCh:
			conn.Close()
		case <-done:
		}
	}()

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if ctx.Err() == nil && !c.isClosed() {
				c.logger.Warn("connection lost", "error", err)
			}
			return
		}
		metrics.TransportMessagesTotal.WithLabelValues("received").Inc()

		text := env.ExtractText()
		if text == "" {
			continue
		}
		if c.handler != nil {
			c.handler(ctx, text)
		}
	}
}

func (c *Client) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed && conn != nil {
		conn.Close()
		return
	}
	c.conn = conn
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
