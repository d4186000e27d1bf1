package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/client"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRenderRoster(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	users := []*v1.User{
		{Name: "alice", LastSeen: now - (30 * time.Second).Milliseconds()},
		{Name: "bob", LastSeen: now - (3 * time.Minute).Milliseconds()},
		{Name: "carol", LastSeen: now - (2 * time.Hour).Milliseconds()},
	}

	var buf bytes.Buffer
	renderRoster(&buf, users, now)
	out := buf.String()

	assert.Contains(t, out, "Active users (2 online)")
	assert.Regexp(t, `● alice\s+online`, out)
	assert.Regexp(t, `● bob\s+3m`, out)
	assert.Regexp(t, `○ carol\s+offline`, out)
}

func TestRenderRoster_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderRoster(&buf, nil, 0)
	assert.Equal(t, "Active users (0 online)\n  No recent activity.\n", buf.String())
}

func TestRenderJoined_Fallback(t *testing.T) {
	now := time.Now().UnixMilli()
	items := []*v1.MessageWithUser{
		{Message: &v1.Message{Author: "dave", Body: "hi", Timestamp: now}, User: &v1.User{Name: "dave", LastSeen: now}},
		{Message: &v1.Message{Author: "ghost", Body: "boo", Timestamp: now}, User: &v1.User{Name: "ghost"}, Fallback: true},
	}

	var buf bytes.Buffer
	renderJoined(&buf, items, now)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dave (online): hi")
	assert.Contains(t, lines[1], "ghost: boo")
}

func TestRenderStats(t *testing.T) {
	now := time.Now().UnixMilli()
	var buf bytes.Buffer
	renderStats(&buf, []*v1.UserWithCount{
		{User: &v1.User{Name: "erin", LastSeen: now - (2 * time.Hour).Milliseconds()}, MessageCount: 4},
	}, 4, now)

	assert.Contains(t, buf.String(), "1 users, 4 messages")
	assert.Regexp(t, `erin\s+4\s+2h ago`, buf.String())
}

func TestRenderMessages_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderMessages(&buf, nil)
	assert.Equal(t, "No messages yet.\n", buf.String())
}

func TestDescribe(t *testing.T) {
	assert.EqualError(t, describe(status.Error(codes.InvalidArgument, "name is required")), "name is required")
	assert.ErrorContains(t, describe(status.Error(codes.Unavailable, "connection refused")), "chat server unavailable")

	plain := errors.New("plain")
	assert.Equal(t, plain, describe(plain))
}

type fakeComposer struct {
	prefs   client.Prefs
	sent    []string
	visible int
	sendErr error
}

func (f *fakeComposer) Prefs() client.Prefs { return f.prefs }

func (f *fakeComposer) SetIdentity(name, email string) error {
	if name != "" {
		f.prefs.Name = name
	}
	if email != "" {
		f.prefs.Email = email
	}
	return nil
}

func (f *fakeComposer) ClearEmail() error {
	f.prefs.Email = ""
	return nil
}

func (f *fakeComposer) Visible() { f.visible++ }

func (f *fakeComposer) Send(_ context.Context, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, body)
	return nil
}

func TestRunCompose_PromptsForIdentity(t *testing.T) {
	comp := &fakeComposer{}
	in := bufio.NewReader(strings.NewReader("frank\nfrank@example.com\nhello\n\n/back\n/email f@example.com\nbye\n/quit\nignored\n"))
	var out bytes.Buffer

	require.NoError(t, runCompose(context.Background(), comp, in, &out))

	assert.Equal(t, "frank", comp.prefs.Name)
	assert.Equal(t, "f@example.com", comp.prefs.Email)
	assert.Equal(t, []string{"hello", "bye"}, comp.sent)
	assert.Equal(t, 1, comp.visible)
	assert.Contains(t, out.String(), "Chatting as frank.")
}

func TestRunCompose_BareEmailClears(t *testing.T) {
	comp := &fakeComposer{prefs: client.Prefs{Name: "hana", Email: "hana@example.com"}}
	in := bufio.NewReader(strings.NewReader("/email\nhi\n/quit\n"))
	var out bytes.Buffer

	require.NoError(t, runCompose(context.Background(), comp, in, &out))
	assert.Equal(t, "", comp.prefs.Email)
	assert.Equal(t, "hana", comp.prefs.Name)
	assert.Equal(t, []string{"hi"}, comp.sent)
}

func TestRunCompose_ReportsSendErrors(t *testing.T) {
	comp := &fakeComposer{prefs: client.Prefs{Name: "gina"}, sendErr: client.ErrIncomplete}
	in := bufio.NewReader(strings.NewReader("hi"))
	var out bytes.Buffer

	require.NoError(t, runCompose(context.Background(), comp, in, &out))
	assert.Contains(t, out.String(), "Please enter both your name and a message")
	assert.NotContains(t, out.String(), "Your name:")
}

func TestRunCompose_StopsOnCancel(t *testing.T) {
	comp := &fakeComposer{prefs: client.Prefs{Name: "hal"}}
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runCompose(ctx, comp, bufio.NewReader(pr), &bytes.Buffer{}) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("compose did not stop on cancel")
	}
}
