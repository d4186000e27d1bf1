package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
)

// StreamSender defines the minimal interface the hub needs from a stream: the
// ability to push WatchResponse snapshots to the connected client.
type StreamSender interface {
	Send(*v1.WatchResponse) error
}

// HubOptions tune the watchers started by a QueryHub.
type HubOptions struct {
	// Refresh re-runs time-dependent presence queries.
	Refresh time.Duration
	// PerSecond caps change-driven re-runs of each watcher.
	PerSecond float64
}

// QueryHub runs one live.Watch per distinct query and fans every snapshot out
// to all streams registered for it. A stream that joins a running query gets
// the latest snapshot right away. The watcher stops when its last stream
// leaves.
type QueryHub struct {
	mu      sync.Mutex
	broker  *live.Broker
	opts    HubOptions
	watches map[string]*queryWatch
	nextID  int64
}

type queryWatch struct {
	query  *liveQuery
	cancel context.CancelFunc

	// sendMu serializes snapshot delivery; take it before QueryHub.mu.
	sendMu  sync.Mutex
	senders map[int64]*subscriber
	last    *v1.WatchResponse
}

type subscriber struct {
	sender StreamSender
	primed bool
	errc   chan error
}

// NewQueryHub creates a hub whose watchers listen on broker.
func NewQueryHub(broker *live.Broker, opts HubOptions) *QueryHub {
	return &QueryHub{broker: broker, opts: opts, watches: make(map[string]*queryWatch)}
}

// Register attaches s to q, starting a watcher if none runs for q.key. It
// returns an id for Unregister and a channel that yields an error if s is
// dropped because a send failed or the query could not run.
func (h *QueryHub) Register(q *liveQuery, s StreamSender) (int64, <-chan error) {
	sub := &subscriber{sender: s, errc: make(chan error, 1)}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	w, running := h.watches[q.key]
	if !running {
		ctx, cancel := context.WithCancel(context.Background())
		w = &queryWatch{query: q, cancel: cancel, senders: make(map[int64]*subscriber)}
		h.watches[q.key] = w
		go h.run(ctx, w)
	}
	w.senders[id] = sub
	h.mu.Unlock()

	metrics.LiveSubscribers.Inc()

	if running {
		h.prime(w, id)
	}
	return id, sub.errc
}

// Unregister removes a previously-registered stream for the given query key.
// It waits for a delivery in flight, so the stream is not sent to once
// Unregister returns.
func (h *QueryHub) Unregister(key string, id int64) {
	h.mu.Lock()
	w, ok := h.watches[key]
	h.mu.Unlock()
	if !ok {
		return
	}

	w.sendMu.Lock()
	defer w.sendMu.Unlock()
	h.remove(w, id)
}

// remove detaches id from w and stops w when it has no streams left. The
// caller holds w.sendMu.
func (h *QueryHub) remove(w *queryWatch, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := w.senders[id]; !ok {
		return
	}
	delete(w.senders, id)
	metrics.LiveSubscribers.Dec()
	if len(w.senders) == 0 {
		if h.watches[w.query.key] == w {
			delete(h.watches, w.query.key)
		}
		w.cancel()
	}
}

// Watchers returns the number of running query watchers.
func (h *QueryHub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watches)
}

// prime sends the cached snapshot to a late joiner unless a broadcast has
// already reached it.
func (h *QueryHub) prime(w *queryWatch, id int64) {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	h.mu.Lock()
	sub, ok := w.senders[id]
	last := w.last
	h.mu.Unlock()

	if !ok || last == nil || sub.primed {
		return
	}
	sub.primed = true
	if err := sub.sender.Send(last); err != nil {
		h.drop(w, id, sub, err)
	}
}

func (h *QueryHub) run(ctx context.Context, w *queryWatch) {
	logger := logging.WithComponent("hub")
	metrics.LiveWatchers.Inc()
	defer metrics.LiveWatchers.Dec()

	sub := h.broker.Subscribe(w.query.tables...)
	defer sub.Close()

	opts := live.Options{Limiter: live.NewLimiter(h.opts.PerSecond)}
	if w.query.refresh {
		opts.Refresh = h.opts.Refresh
	}

	duration := metrics.LiveQueryDuration.WithLabelValues(w.query.name)
	query := func(ctx context.Context) (*v1.WatchResponse, error) {
		timer := metrics.NewTimer()
		defer timer.ObserveDuration(duration)
		return w.query.run(ctx)
	}

	err := live.Watch(ctx, sub, query, func(resp *v1.WatchResponse) error {
		h.broadcast(w, resp)
		return nil
	}, opts)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	logger.Error().Err(err).Str("query", w.query.key).Msg("live query stopped")
	h.fail(w, err)
}

// broadcast delivers resp to every current subscriber of w, dropping the
// ones whose send fails. It returns the first error encountered (if any).
func (h *QueryHub) broadcast(w *queryWatch, resp *v1.WatchResponse) error {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	h.mu.Lock()
	w.last = resp
	subs := make(map[int64]*subscriber, len(w.senders))
	for id, s := range w.senders {
		subs[id] = s
	}
	h.mu.Unlock()

	var firstErr error
	for id, s := range subs {
		s.primed = true
		if err := s.sender.Send(resp); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			h.drop(w, id, s, err)
		}
	}
	metrics.LiveRefreshes.WithLabelValues(w.query.name).Inc()
	return firstErr
}

// drop removes a stream whose send failed. The caller holds w.sendMu.
func (h *QueryHub) drop(w *queryWatch, id int64, s *subscriber, err error) {
	h.remove(w, id)
	select {
	case s.errc <- err:
	default:
	}
}

// fail ends every subscription of w with err.
func (h *QueryHub) fail(w *queryWatch, err error) {
	w.sendMu.Lock()
	defer w.sendMu.Unlock()

	h.mu.Lock()
	subs := w.senders
	w.senders = make(map[int64]*subscriber)
	if h.watches[w.query.key] == w {
		delete(h.watches, w.query.key)
	}
	h.mu.Unlock()

	for range subs {
		metrics.LiveSubscribers.Dec()
	}
	for _, s := range subs {
		select {
		case s.errc <- err:
		default:
		}
	}
}
