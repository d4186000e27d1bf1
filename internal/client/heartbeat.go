package client

import (
	"context"
	"sync"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
)

const (
	DefaultHeartbeatInterval = 2 * time.Minute
	DefaultIdleAfter         = 5 * time.Minute
)

// Heartbeat keeps a user's presence fresh while they are interacting. It
// touches once on start, then every Interval as long as the last interaction
// is less than IdleAfter old.
type Heartbeat struct {
	Interval  time.Duration
	IdleAfter time.Duration

	touch func(context.Context) error
	now   func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewHeartbeat returns a heartbeat that calls touch. The user counts as
// active from the moment it is created.
func NewHeartbeat(touch func(context.Context) error) *Heartbeat {
	h := &Heartbeat{
		Interval:  DefaultHeartbeatInterval,
		IdleAfter: DefaultIdleAfter,
		touch:     touch,
		now:       time.Now,
	}
	h.last = h.now()
	return h
}

// Interact records a user interaction.
func (h *Heartbeat) Interact() {
	h.mu.Lock()
	h.last = h.now()
	h.mu.Unlock()
}

// Visible touches right away, as when the user comes back to the session.
func (h *Heartbeat) Visible(ctx context.Context) {
	h.Interact()
	h.beat(ctx)
}

// Run beats until ctx is done.
func (h *Heartbeat) Run(ctx context.Context) {
	h.beat(ctx)

	t := time.NewTicker(h.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if h.active() {
				h.beat(ctx)
			}
		}
	}
}

func (h *Heartbeat) active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now().Sub(h.last) < h.IdleAfter
}

func (h *Heartbeat) beat(ctx context.Context) {
	if err := h.touch(ctx); err != nil && ctx.Err() == nil {
		logger := logging.WithComponent("heartbeat")
		logger.Warn().Err(err).Msg("failed to update user activity")
	}
}
