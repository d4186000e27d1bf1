package live

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type recorder struct {
	mu  sync.Mutex
	got []int
}

func (r *recorder) emit(v int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, v)
	return nil
}

func (r *recorder) values() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.got...)
}

func TestWatch_EmitsInitialAndOnChange(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe(TableMessages)
	defer sub.Close()

	var counter atomic.Int64
	query := func(context.Context) (int, error) { return int(counter.Load()), nil }

	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, sub, query, rec.emit, Options{}) }()

	require.Eventually(t, func() bool { return len(rec.values()) == 1 }, time.Second, 5*time.Millisecond)

	counter.Store(1)
	b.Publish(TableMessages, "m1")
	require.Eventually(t, func() bool { return len(rec.values()) == 2 }, time.Second, 5*time.Millisecond)

	// A change that leaves the result untouched is not re-emitted.
	b.Publish(TableMessages, "m1")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []int{0, 1}, rec.values())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatch_RefreshTicks(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe(TableUsers)
	defer sub.Close()

	var calls atomic.Int64
	query := func(context.Context) (int, error) { return int(calls.Add(1)), nil }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	go Watch(ctx, sub, query, rec.emit, Options{Refresh: 10 * time.Millisecond})

	require.Eventually(t, func() bool { return len(rec.values()) >= 3 }, time.Second, 5*time.Millisecond)
}

func TestWatch_InitialQueryError(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe(TableUsers)
	defer sub.Close()

	boom := errors.New("boom")
	err := Watch(context.Background(), sub,
		func(context.Context) (int, error) { return 0, boom },
		func(int) error { t.Fatal("emit must not be called"); return nil },
		Options{})
	assert.ErrorIs(t, err, boom)
}

func TestWatch_EmitErrorStops(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe(TableUsers)
	defer sub.Close()

	gone := errors.New("client gone")
	err := Watch(context.Background(), sub,
		func(context.Context) (int, error) { return 1, nil },
		func(int) error { return gone },
		Options{})
	assert.ErrorIs(t, err, gone)
}

func TestWatch_LaterQueryErrorIsRetried(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe(TableMessages)
	defer sub.Close()

	var n atomic.Int64
	query := func(context.Context) (int, error) {
		switch n.Add(1) {
		case 2:
			return 0, errors.New("transient")
		default:
			return int(n.Load()), nil
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	go Watch(ctx, sub, query, rec.emit, Options{})

	require.Eventually(t, func() bool { return len(rec.values()) == 1 }, time.Second, 5*time.Millisecond)
	b.Publish(TableMessages, "a")
	require.Eventually(t, func() bool { return n.Load() == 2 }, time.Second, 5*time.Millisecond)
	b.Publish(TableMessages, "b")
	require.Eventually(t, func() bool { return len(rec.values()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 3}, rec.values())
}

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, NewLimiter(0))
	l := NewLimiter(5)
	require.NotNil(t, l)
	assert.InDelta(t, 5.0, float64(l.Limit()), 0.001)
}

func TestSame_ComparesProtoMessagesByValue(t *testing.T) {
	sent := wrapperspb.Int64(7)
	_, err := proto.Marshal(sent)
	require.NoError(t, err)

	assert.True(t, same(sent, wrapperspb.Int64(7)))
	assert.False(t, same(sent, wrapperspb.Int64(8)))
	assert.True(t, same([]int{1}, []int{1}))
}
