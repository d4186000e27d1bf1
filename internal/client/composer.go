package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/normalize"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// ResolveDelay is how long identity edits must settle before the user is
// resolved on the server.
const ResolveDelay = 500 * time.Millisecond

// ErrIncomplete is returned by Send when the name or the body is blank. Its
// text is shown to the user as is.
var ErrIncomplete = errors.New("Please enter both your name and a message")

// ChatAPI is the part of the chat service the composer talks to.
type ChatAPI interface {
	ResolveOrCreateUser(ctx context.Context, in *v1.ResolveOrCreateUserRequest, opts ...grpc.CallOption) (*v1.UserResponse, error)
	TouchActivity(ctx context.Context, in *v1.TouchActivityRequest, opts ...grpc.CallOption) (*v1.TouchActivityResponse, error)
	SendMessage(ctx context.Context, in *v1.SendMessageRequest, opts ...grpc.CallOption) (*v1.SendMessageResponse, error)
}

// Composer edits an identity and sends messages on its behalf. Identity
// changes are saved to the prefs file immediately and resolved on the server
// after ResolveDelay; once a user id is known a Heartbeat keeps it online.
type Composer struct {
	api       ChatAPI
	prefsPath string
	debounce  *Debouncer
	logger    zerolog.Logger

	// HeartbeatInterval and IdleAfter override the heartbeat defaults when
	// set before Start.
	HeartbeatInterval time.Duration
	IdleAfter         time.Duration

	mu        sync.Mutex
	ctx       context.Context
	prefs     Prefs
	heartbeat *Heartbeat
	stopBeat  context.CancelFunc
}

// NewComposer starts from prefs, which are written back to prefsPath on
// every change. An empty prefsPath keeps them in memory.
func NewComposer(api ChatAPI, prefs *Prefs, prefsPath string) *Composer {
	c := &Composer{
		api:       api,
		prefsPath: prefsPath,
		debounce:  NewDebouncer(ResolveDelay),
		logger:    logging.WithComponent("composer"),
		ctx:       context.Background(),
	}
	if prefs != nil {
		c.prefs = *prefs
	}
	return c
}

// Start binds the composer to ctx and starts the heartbeat for a remembered
// user id.
func (c *Composer) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
	if c.prefs.UserID != "" {
		c.startHeartbeatLocked(c.prefs.UserID)
	}
}

// Close stops pending resolution and the heartbeat.
func (c *Composer) Close() {
	c.debounce.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopBeat != nil {
		c.stopBeat()
		c.stopBeat = nil
	}
}

// Prefs returns a copy of the current identity.
func (c *Composer) Prefs() Prefs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// SetIdentity records a new name and email and schedules resolution. A blank
// name is remembered but never resolved.
func (c *Composer) SetIdentity(name, email string) error {
	c.mu.Lock()
	if name != "" {
		c.prefs.Name = name
	}
	if email != "" {
		c.prefs.Email = email
	}
	err := c.saveLocked()
	c.mu.Unlock()

	c.interact()
	c.debounce.Trigger(c.resolve)
	return err
}

// ClearEmail forgets the remembered email, so the identity resolves by name
// alone.
func (c *Composer) ClearEmail() error {
	c.mu.Lock()
	c.prefs.Email = ""
	err := c.saveLocked()
	c.mu.Unlock()

	c.interact()
	c.debounce.Trigger(c.resolve)
	return err
}

// Flush resolves a pending identity change now.
func (c *Composer) Flush() bool {
	return c.debounce.Flush()
}

// Visible signals that the user returned to the session.
func (c *Composer) Visible() {
	c.mu.Lock()
	hb, ctx := c.heartbeat, c.ctx
	c.mu.Unlock()
	if hb != nil {
		hb.Visible(ctx)
	}
}

// Send posts body as the current identity. It returns ErrIncomplete for a
// blank name or body, and the server's message for rejected sends.
func (c *Composer) Send(ctx context.Context, body string) error {
	p := c.Prefs()
	name := normalize.Name(p.Name)
	body = strings.TrimSpace(body)
	if name == "" || body == "" {
		return ErrIncomplete
	}

	c.interact()
	_, err := c.api.SendMessage(ctx, &v1.SendMessageRequest{
		Author: name,
		Body:   body,
		Email:  strings.TrimSpace(p.Email),
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to send message")
		if st, ok := status.FromError(err); ok && st.Message() != "" {
			return errors.New(st.Message())
		}
		return errors.New("Failed to send message")
	}
	return nil
}

func (c *Composer) resolve() {
	c.mu.Lock()
	p, ctx := c.prefs, c.ctx
	c.mu.Unlock()

	name := normalize.Name(p.Name)
	if name == "" {
		return
	}
	resp, err := c.api.ResolveOrCreateUser(ctx, &v1.ResolveOrCreateUserRequest{
		Name:  name,
		Email: strings.TrimSpace(p.Email),
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to create/get user")
		return
	}

	id := resp.GetUser().GetId()
	if id == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prefs.UserID == id && c.stopBeat != nil {
		return
	}
	c.prefs.UserID = id
	if err := c.saveLocked(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to save prefs")
	}
	c.startHeartbeatLocked(id)
}

func (c *Composer) startHeartbeatLocked(userID string) {
	if c.stopBeat != nil {
		c.stopBeat()
	}
	hb := NewHeartbeat(func(ctx context.Context) error {
		_, err := c.api.TouchActivity(ctx, &v1.TouchActivityRequest{UserId: userID})
		return err
	})
	if c.HeartbeatInterval > 0 {
		hb.Interval = c.HeartbeatInterval
	}
	if c.IdleAfter > 0 {
		hb.IdleAfter = c.IdleAfter
	}

	ctx, cancel := context.WithCancel(c.ctx)
	c.heartbeat = hb
	c.stopBeat = cancel
	go hb.Run(ctx)
}

func (c *Composer) interact() {
	c.mu.Lock()
	hb := c.heartbeat
	c.mu.Unlock()
	if hb != nil {
		hb.Interact()
	}
}

func (c *Composer) saveLocked() error {
	if c.prefsPath == "" {
		return nil
	}
	return c.prefs.Save(c.prefsPath)
}
