// Package feed accepts gloss tokens over a websocket and hands them to an
// avatar's frame loop.
//
// Speech recognition and English-to-gloss translation run outside the
// animation core. Whatever produces tokens connects to a Server and sends
// JSON messages:
//
//	{"tokens": ["HELLO", "CHAR_A"]}
//	{"text": "thank you"}
//
// The server decodes them on the connection goroutine and buffers them; the
// frame loop calls Drain once per frame to move them into the avatar, so
// the avatar itself is only ever touched from one goroutine.
package feed

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait     = 10 * time.Second
	defaultBuffer = 64
)

// Message is one batch of input from a producer. Tokens take precedence
// over Text when both are set.
type Message struct {
	Tokens []string `json:"tokens,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Enqueuer is the subset of an avatar the feed writes to.
type Enqueuer interface {
	Enqueue(tokens ...string) int
	EnqueueText(text string) int
}

// Server is an http.Handler that upgrades requests to websockets and
// collects Messages.
type Server struct {
	upgrader websocket.Upgrader
	inbox    chan Message
	log      *slog.Logger

	received atomic.Uint64
	dropped  atomic.Uint64
}

// NewServer creates a server buffering up to buffer messages between
// frames. A nil logger means slog.Default().
func NewServer(buffer int, log *slog.Logger) *Server {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		inbox: make(chan Message, buffer),
		log:   log.With(slog.String("component", "feed")),
	}
}

// ServeHTTP upgrades the connection and reads messages until it closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", slog.String("remote", r.RemoteAddr), slog.Any("err", err))
		return
	}
	defer conn.Close()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("connection closed", slog.String("remote", r.RemoteAddr), slog.Any("err", err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.log.Warn("discarding malformed message", slog.String("remote", r.RemoteAddr), slog.Any("err", err))
			continue
		}
		if len(msg.Tokens) == 0 && msg.Text == "" {
			continue
		}

		select {
		case s.inbox <- msg:
			s.received.Add(1)
		default:
			s.dropped.Add(1)
			s.log.Warn("inbox full, dropping message", slog.Int("buffer", cap(s.inbox)))
			message := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "inbox full")
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, message)
			return
		}
	}
}

// Drain moves every buffered message into dst without blocking and returns
// the number of tokens accepted. Call it from the frame loop.
func (s *Server) Drain(dst Enqueuer) int {
	accepted := 0
	for {
		select {
		case msg := <-s.inbox:
			if len(msg.Tokens) > 0 {
				accepted += dst.Enqueue(msg.Tokens...)
			} else {
				accepted += dst.EnqueueText(msg.Text)
			}
		default:
			return accepted
		}
	}
}

// Stats reports how many messages were buffered and dropped.
func (s *Server) Stats() (received, dropped uint64) {
	return s.received.Load(), s.dropped.Load()
}

// Client sends Messages to a Server.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a feed server at a ws:// or wss:// URL.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send writes one message.
func (c *Client) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Close sends a normal close frame and closes the connection.
func (c *Client) Close() error {
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, message)
	return c.conn.Close()
}
