// Package live turns one-shot store queries into subscriptions. Writers
// publish table changes on a Broker; Watch re-runs a query whenever one of its
// tables changes and emits the new result.
package live

import (
	"sync"
)

// Tables that publish changes.
const (
	TableUsers    = "users"
	TableMessages = "messages"
)

// Change names the table (and row) a write touched.
type Change struct {
	Table string
	ID    string
}

// Broker fans change notifications out to subscriptions.
type Broker struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers interest in changes to any of tables. The caller must
// Close the subscription when done.
func (b *Broker) Subscribe(tables ...string) *Subscription {
	s := &Subscription{
		broker: b,
		tables: make(map[string]struct{}, len(tables)),
		c:      make(chan struct{}, 1),
	}
	for _, t := range tables {
		s.tables[t] = struct{}{}
	}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()
	return s
}

// Publish signals every subscription interested in table. It never blocks:
// a subscription that already has a pending signal absorbs the new one.
func (b *Broker) Publish(table, id string) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs {
		if _, ok := s.tables[table]; !ok {
			continue
		}
		select {
		case s.c <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Subscription is a coalescing change signal.
type Subscription struct {
	broker *Broker
	tables map[string]struct{}
	c      chan struct{}
	once   sync.Once
}

// C receives a value after one or more relevant changes.
func (s *Subscription) C() <-chan struct{} {
	return s.c
}

// Close detaches the subscription from its broker. It is safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.mu.Lock()
		delete(s.broker.subs, s)
		s.broker.mu.Unlock()
	})
}
