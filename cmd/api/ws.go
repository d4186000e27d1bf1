package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"google.golang.org/grpc/status"
)

const wsReadTimeout = 60 * time.Second

var (
	errClientClosed = errors.New("websocket client closed")
	errClientSlow   = errors.New("websocket client too slow")
)

// wsEvent is the envelope for every frame in both directions.
//
// Client → server: "subscribe" {id?, query, userId?, limit?},
// "unsubscribe" {id}, "ping".
// Server → client: "subscribed" {id}, "snapshot" {id, snapshot},
// "error" {id?, message}, "pong".
type wsEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type wsSubscribe struct {
	ID     string `json:"id"`
	Query  string `json:"query"`
	UserID string `json:"userId"`
	Limit  int64  `json:"limit"`
}

// wsSnapshot carries a WatchResponse in the protobuf JSON mapping.
type wsSnapshot struct {
	ID       string          `json:"id"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

type wsError struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

func (a *httpAPI) upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(a.handleConnection)(c)
	}
	return fiber.ErrUpgradeRequired
}

func (a *httpAPI) handleConnection(c *websocket.Conn) {
	client := newWSClient(a.srv)
	defer client.close()

	metrics.WebSocketConnections.Inc()
	defer metrics.WebSocketConnections.Dec()

	// Writer goroutine
	go func() {
		defer c.Close()
		for msg := range client.send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop
	c.SetReadDeadline(time.Now().Add(wsReadTimeout))
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}
		c.SetReadDeadline(time.Now().Add(wsReadTimeout))
		client.handle(msg)
	}
}

// wsClient multiplexes live query subscriptions over one connection.
type wsClient struct {
	srv  *Server
	send chan []byte

	mu     sync.Mutex
	closed bool
	subs   map[string]*wsSubscription
}

type wsSubscription struct {
	key    string
	hubID  int64
	cancel context.CancelFunc
}

func newWSClient(srv *Server) *wsClient {
	return &wsClient{srv: srv, send: make(chan []byte, 256), subs: make(map[string]*wsSubscription)}
}

// handle processes one inbound frame. Malformed frames are ignored.
func (c *wsClient) handle(raw []byte) {
	var ev wsEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return
	}

	switch ev.Type {
	case "ping":
		_ = c.push("pong", nil)
	case "subscribe":
		var req wsSubscribe
		if err := json.Unmarshal(ev.Data, &req); err != nil {
			_ = c.push("error", wsError{Message: "invalid subscribe payload"})
			return
		}
		c.subscribe(req)
	case "unsubscribe":
		var req struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(ev.Data, &req); err == nil {
			c.unsubscribe(req.ID)
		}
	default:
		logger := logging.WithComponent("ws")
		logger.Debug().Str("type", ev.Type).Msg("unknown event type")
	}
}

func (c *wsClient) subscribe(req wsSubscribe) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	q, err := c.srv.resolveQuery(&v1.WatchRequest{Query: req.Query, UserId: req.UserID, Limit: req.Limit})
	if err != nil {
		_ = c.push("error", wsError{ID: req.ID, Message: status.Convert(toStatus(context.Background(), err)).Message()})
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if _, dup := c.subs[req.ID]; dup {
		c.mu.Unlock()
		_ = c.push("error", wsError{ID: req.ID, Message: "subscription id already in use"})
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	sub := &wsSubscription{key: q.key, cancel: cancel}
	c.subs[req.ID] = sub
	c.mu.Unlock()

	_ = c.push("subscribed", wsSnapshot{ID: req.ID})

	id, errc := c.srv.hub.Register(q, wsSender{client: c, id: req.ID})
	c.mu.Lock()
	sub.hubID = id
	c.mu.Unlock()

	go func() {
		select {
		case err := <-errc:
			c.drop(req.ID)
			_ = c.push("error", wsError{ID: req.ID, Message: status.Convert(toStatus(ctx, err)).Message()})
		case <-ctx.Done():
		}
	}()
}

func (c *wsClient) unsubscribe(id string) {
	c.drop(id)
}

// drop removes the subscription from the client and the hub.
func (c *wsClient) drop(id string) {
	c.mu.Lock()
	sub, ok := c.subs[id]
	delete(c.subs, id)
	c.mu.Unlock()

	if !ok {
		return
	}
	sub.cancel()
	c.srv.hub.Unregister(sub.key, sub.hubID)
}

func (c *wsClient) push(typ string, data any) error {
	ev := wsEvent{Type: typ}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		ev.Data = raw
	}
	frame, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClientClosed
	}
	select {
	case c.send <- frame:
		return nil
	default:
		return errClientSlow
	}
}

// close drops every subscription and stops the writer.
func (c *wsClient) close() {
	c.mu.Lock()
	ids := make([]string, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.drop(id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// wsSender adapts one subscription of a client to StreamSender.
type wsSender struct {
	client *wsClient
	id     string
}

func (s wsSender) Send(resp *v1.WatchResponse) error {
	raw, err := jsonOut.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.push("snapshot", wsSnapshot{ID: s.id, Snapshot: raw})
}
