package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

type fakeAPI struct {
	mu       sync.Mutex
	resolved []*v1.ResolveOrCreateUserRequest
	touched  []string
	sent     []*v1.SendMessageRequest
	sendErr  error
}

func (f *fakeAPI) ResolveOrCreateUser(_ context.Context, in *v1.ResolveOrCreateUserRequest, _ ...grpc.CallOption) (*v1.UserResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, in)
	return &v1.UserResponse{User: &v1.User{Id: "id-" + in.Name, Name: in.Name}}, nil
}

func (f *fakeAPI) TouchActivity(_ context.Context, in *v1.TouchActivityRequest, _ ...grpc.CallOption) (*v1.TouchActivityResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, in.UserId)
	return &v1.TouchActivityResponse{}, nil
}

func (f *fakeAPI) SendMessage(_ context.Context, in *v1.SendMessageRequest, _ ...grpc.CallOption) (*v1.SendMessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, in)
	return &v1.SendMessageResponse{}, nil
}

func (f *fakeAPI) touches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.touched...)
}

func (f *fakeAPI) resolves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.resolved)
}

var _ ChatAPI = (v1.ChatServiceClient)(nil)

func TestPrefs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	empty, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, &Prefs{}, empty)

	want := &Prefs{Name: "alice", Email: "alice@example.com", UserID: "u1"}
	require.NoError(t, want.Save(path))

	got, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPrefs_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated"), 0o600))

	_, err := LoadPrefs(path)
	assert.ErrorContains(t, err, "parse prefs")
}

func TestDebouncer_RunsLastCallOnce(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Value

	for _, v := range []string{"a", "ab", "abc"} {
		v := v
		d.Trigger(func() {
			calls.Add(1)
			last.Store(v)
		})
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "abc", last.Load())
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	d := NewDebouncer(time.Hour)
	ran := false

	assert.False(t, d.Flush(), "nothing pending")

	d.Trigger(func() { ran = true })
	assert.True(t, d.Flush())
	assert.True(t, ran)
	assert.False(t, d.Flush(), "flush consumes the call")

	d.Trigger(func() { t.Error("stopped call ran") })
	d.Stop()
	assert.False(t, d.Flush())
}

func TestHeartbeat_TouchesWhileActive(t *testing.T) {
	var touches atomic.Int32
	hb := NewHeartbeat(func(context.Context) error {
		touches.Add(1)
		return nil
	})
	hb.Interval = 10 * time.Millisecond
	hb.IdleAfter = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hb.Run(ctx)

	assert.Eventually(t, func() bool { return touches.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestHeartbeat_SkipsWhenIdle(t *testing.T) {
	var touches atomic.Int32
	hb := NewHeartbeat(func(context.Context) error {
		touches.Add(1)
		return errors.New("ignored")
	})
	hb.Interval = 5 * time.Millisecond
	hb.IdleAfter = time.Minute

	now := time.Now()
	hb.now = func() time.Time { return now.Add(10 * time.Minute) }

	ctx, cancel := context.WithCancel(context.Background())
	go hb.Run(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	assert.Equal(t, int32(1), touches.Load(), "only the initial touch")

	hb.Visible(context.Background())
	assert.Equal(t, int32(2), touches.Load())
	assert.True(t, hb.active(), "visible counts as interaction")
}

func TestComposer_SendValidation(t *testing.T) {
	api := &fakeAPI{}
	c := NewComposer(api, &Prefs{}, "")
	defer c.Close()

	assert.ErrorIs(t, c.Send(context.Background(), "hi"), ErrIncomplete)

	require.NoError(t, c.SetIdentity("  bob ", ""))
	assert.ErrorIs(t, c.Send(context.Background(), "   "), ErrIncomplete)
	assert.Equal(t, "Please enter both your name and a message", ErrIncomplete.Error())

	require.NoError(t, c.Send(context.Background(), "  hello  "))
	require.Len(t, api.sent, 1)
	assert.True(t, proto.Equal(&v1.SendMessageRequest{Author: "bob", Body: "hello"}, api.sent[0]), "sent %v", api.sent[0])
}

func TestComposer_SendSurfacesServerMessage(t *testing.T) {
	api := &fakeAPI{sendErr: status.Error(codes.InvalidArgument, "message cannot be empty")}
	c := NewComposer(api, &Prefs{Name: "bob"}, "")
	defer c.Close()

	err := c.Send(context.Background(), "x")
	assert.EqualError(t, err, "message cannot be empty")

	api.sendErr = errors.New("boom")
	err = c.Send(context.Background(), "x")
	assert.EqualError(t, err, "Failed to send message")
}

func TestComposer_ResolvesAndStartsHeartbeat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	api := &fakeAPI{}
	c := NewComposer(api, &Prefs{}, path)
	c.HeartbeatInterval = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Close()

	require.NoError(t, c.SetIdentity("car", ""))
	require.NoError(t, c.SetIdentity("carol", "Carol@Example.com"))
	assert.Equal(t, 0, api.resolves(), "resolution is debounced")

	require.True(t, c.Flush())
	assert.Equal(t, 1, api.resolves())
	assert.Equal(t, "carol", api.resolved[0].Name)
	assert.Equal(t, "Carol@Example.com", api.resolved[0].Email)
	assert.Equal(t, "id-carol", c.Prefs().UserID)

	// The heartbeat touches immediately for the resolved user.
	assert.Eventually(t, func() bool {
		touched := api.touches()
		return len(touched) > 0 && touched[0] == "id-carol"
	}, time.Second, 5*time.Millisecond)

	saved, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, Prefs{Name: "carol", Email: "Carol@Example.com", UserID: "id-carol"}, *saved)
}

func TestComposer_ClearEmailResolvesByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	api := &fakeAPI{}
	c := NewComposer(api, &Prefs{}, path)
	c.HeartbeatInterval = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Close()

	require.NoError(t, c.SetIdentity("erin", "erin@example.com"))
	require.True(t, c.Flush())

	require.NoError(t, c.ClearEmail())
	assert.Equal(t, "", c.Prefs().Email)
	require.True(t, c.Flush())

	require.Equal(t, 2, api.resolves())
	assert.Equal(t, "erin", api.resolved[1].Name)
	assert.Equal(t, "", api.resolved[1].Email)

	saved, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, "", saved.Email)
	assert.Equal(t, "erin", saved.Name)
}

func TestComposer_StartWithRememberedUser(t *testing.T) {
	api := &fakeAPI{}
	c := NewComposer(api, &Prefs{Name: "dan", UserID: "id-dan"}, "")
	c.HeartbeatInterval = time.Hour
	c.Start(context.Background())
	defer c.Close()

	assert.Eventually(t, func() bool { return len(api.touches()) == 1 }, time.Second, 5*time.Millisecond)

	c.Visible()
	assert.Equal(t, []string{"id-dan", "id-dan"}, api.touches())
	assert.Equal(t, 0, api.resolves())
}

func TestDial(t *testing.T) {
	c, err := Dial("localhost:0", Options{})
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
