package chat

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data/bolt"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ ms int64 }

func (c *fakeClock) Now() int64 { return c.ms }

func (c *fakeClock) advance(d time.Duration) { c.ms += d.Milliseconds() }

type recordingPublisher struct {
	mu      sync.Mutex
	changes []live.Change
}

func (p *recordingPublisher) Publish(table, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, live.Change{Table: table, ID: id})
}

type fixture struct {
	backend *data.Backend
	clock   *fakeClock
	pub     *recordingPublisher
	dir     *Directory
	feed    *Feed
}

func setup(t *testing.T) *fixture {
	t.Helper()
	b, err := bolt.NewBackend(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close(context.Background()) })

	f := &fixture{backend: b, clock: &fakeClock{ms: 1_700_000_000_000}, pub: &recordingPublisher{}}
	f.dir = NewDirectory(b.Users, b.Messages, f.clock, f.pub)
	f.feed = NewFeed(f.dir)
	return f
}

func TestResolveOrCreateUser(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.dir.ResolveOrCreateUser(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrValidation)

	alice, err := f.dir.ResolveOrCreateUser(ctx, "  alice ", " Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Name)
	assert.Equal(t, "Alice@Example.com", alice.Email)
	assert.Equal(t, f.clock.ms, alice.LastSeen)

	f.clock.advance(time.Minute)
	again, err := f.dir.ResolveOrCreateUser(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, again.ID, "name match")
	assert.Equal(t, f.clock.ms, again.LastSeen)

	byEmail, err := f.dir.ResolveOrCreateUser(ctx, "Ally", "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID, "email wins over name")
	assert.Equal(t, "alice", byEmail.Name, "name is immutable")

	bob, err := f.dir.ResolveOrCreateUser(ctx, "bob", "nobody@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	users, err := f.backend.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestResolve_EmailMatchIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	ann, err := f.dir.ResolveOrCreateUser(ctx, "ann", "Ann@Example.com")
	require.NoError(t, err)

	bea, err := f.dir.ResolveOrCreateUser(ctx, "bea", "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, ann.ID, bea.ID)
	assert.Equal(t, "ann@example.com", bea.Email)

	again, err := f.dir.ResolveOrCreateUser(ctx, "someone", "Ann@Example.com")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, again.ID)
}

func TestResolve_EmailMissFallsBackToName(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	carol, err := f.dir.ResolveOrCreateUser(ctx, "carol", "")
	require.NoError(t, err)

	got, err := f.dir.ResolveOrCreateUser(ctx, "carol", "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, carol.ID, got.ID)
}

func TestSendMessage_Validation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	tests := []struct {
		name, author, body, wantMsg, wantField string
	}{
		{"empty author", "", "hi", "author name is required", "author"},
		{"blank author", "  \t", "hi", "author name is required", "author"},
		{"both empty reports author", "", "", "author name is required", "author"},
		{"empty body", "alice", "", "message cannot be empty", "body"},
		{"blank body", "alice", "   ", "message cannot be empty", "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.feed.SendMessage(ctx, tt.author, tt.body, "")
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	n, err := f.feed.CountAllMessages(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "rejected sends write nothing")
	users, err := f.backend.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSendMessage_StoresTrimmedMessage(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	msg, err := f.feed.SendMessage(ctx, " alice ", "  hello world  ", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.Author)
	assert.Equal(t, "hello world", msg.Body)
	assert.Equal(t, f.clock.ms, msg.Timestamp)

	u, err := f.dir.GetUser(ctx, msg.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)

	assert.Contains(t, f.pub.changes, live.Change{Table: live.TableUsers, ID: u.ID})
	assert.Contains(t, f.pub.changes, live.Change{Table: live.TableMessages, ID: msg.ID})
}

func TestListRecentMessages_OldestFirstWithinWindow(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for i := 0; i < 60; i++ {
		f.clock.advance(time.Second)
		_, err := f.feed.SendMessage(ctx, "alice", fmt.Sprintf("m%02d", i), "")
		require.NoError(t, err)
	}

	msgs, err := f.feed.ListRecentMessages(ctx, 0)
	require.NoError(t, err)
	require.Len(t, msgs, DefaultMessageLimit)
	assert.Equal(t, "m10", msgs[0].Body)
	assert.Equal(t, "m59", msgs[len(msgs)-1].Body)
	for i := 1; i < len(msgs); i++ {
		assert.LessOrEqual(t, msgs[i-1].Timestamp, msgs[i].Timestamp)
	}

	three, err := f.feed.ListRecentMessages(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"m57", "m58", "m59"}, bodies(three))

	neg, err := f.feed.ListRecentMessages(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, neg, DefaultMessageLimit)
}

func TestListRecentMessages_Empty(t *testing.T) {
	f := setup(t)

	msgs, err := f.feed.ListRecentMessages(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

type missingUsers struct {
	data.UsersStore
	gone string
}

func (m missingUsers) Get(ctx context.Context, id string) (*data.User, error) {
	if id == m.gone {
		return nil, data.ErrNotFound
	}
	return m.UsersStore.Get(ctx, id)
}

func TestListRecentMessagesWithUsers_Fallback(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	a, err := f.feed.SendMessage(ctx, "alice", "one", "")
	require.NoError(t, err)
	f.clock.advance(time.Second)
	b, err := f.feed.SendMessage(ctx, "bob", "two", "")
	require.NoError(t, err)

	dir := NewDirectory(missingUsers{UsersStore: f.backend.Users, gone: b.UserID}, f.backend.Messages, f.clock, nil)
	joined, err := NewFeed(dir).ListRecentMessagesWithUsers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, joined, 2)

	assert.False(t, joined[0].Fallback)
	assert.Equal(t, a.UserID, joined[0].User.ID)
	assert.Equal(t, "alice", joined[0].User.Name)

	assert.True(t, joined[1].Fallback)
	assert.Equal(t, &data.User{ID: b.UserID, Name: "bob"}, joined[1].User)
	assert.Equal(t, "two", joined[1].Message.Body)
}

func TestListMessagesForUser(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	var aliceID string
	for i, author := range []string{"alice", "bob", "alice", "bob", "alice"} {
		f.clock.advance(time.Second)
		m, err := f.feed.SendMessage(ctx, author, fmt.Sprintf("%s-%d", author, i), "")
		require.NoError(t, err)
		if author == "alice" {
			aliceID = m.UserID
		}
	}

	msgs, err := f.feed.ListMessagesForUser(ctx, aliceID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-0", "alice-2", "alice-4"}, bodies(msgs))
	for _, m := range msgs {
		assert.Equal(t, aliceID, m.UserID)
	}

	two, err := f.feed.ListMessagesForUser(ctx, aliceID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-2", "alice-4"}, bodies(two))

	n, err := f.feed.CountMessagesForUser(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	total, err := f.feed.CountAllMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	unknown, err := f.feed.CountMessagesForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, unknown)
}

func TestTouchActivity(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	u, err := f.dir.ResolveOrCreateUser(ctx, "alice", "")
	require.NoError(t, err)

	f.clock.advance(3 * time.Minute)
	require.NoError(t, f.dir.TouchActivity(ctx, u.ID))
	got, err := f.dir.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, f.clock.ms, got.LastSeen)

	f.clock.ms -= time.Hour.Milliseconds()
	require.NoError(t, f.dir.TouchActivity(ctx, u.ID))
	rewound, err := f.dir.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, got.LastSeen, rewound.LastSeen, "lastSeen never moves back")

	assert.NoError(t, f.dir.TouchActivity(ctx, "does-not-exist"))
	assert.NoError(t, f.dir.TouchActivity(ctx, ""))
}

func TestGetUser_NotFound(t *testing.T) {
	f := setup(t)

	_, err := f.dir.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestPresenceQueries(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	start := f.clock.ms

	seen := map[string]time.Duration{
		"now":    0,
		"two":    2 * time.Minute,
		"five":   5 * time.Minute,
		"ten":    10 * time.Minute,
		"thirty": 30 * time.Minute,
		"hour":   time.Hour,
	}
	for name, ago := range seen {
		f.clock.ms = start - ago.Milliseconds()
		_, err := f.dir.ResolveOrCreateUser(ctx, name, "")
		require.NoError(t, err)
	}
	f.clock.ms = start

	active, err := f.dir.CountActiveUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), active, "now, two and five are inside the window")

	recent, err := f.dir.ListRecentActiveUsers(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"now", "two", "five", "ten", "thirty"}, names(recent))

	capped, err := f.dir.ListRecentActiveUsers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"now", "two"}, names(capped))
}

func TestListRecentActiveUsers_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for i := 0; i < 12; i++ {
		f.clock.advance(time.Second)
		_, err := f.dir.ResolveOrCreateUser(ctx, fmt.Sprintf("user%02d", i), "")
		require.NoError(t, err)
	}

	users, err := f.dir.ListRecentActiveUsers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, users, DefaultRosterLimit)
	assert.Equal(t, "user11", users[0].Name)
}

func TestListUsersWithMessageCounts(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.dir.ResolveOrCreateUser(ctx, "lurker", "")
	require.NoError(t, err)
	for _, author := range []string{"alice", "bob", "alice"} {
		f.clock.advance(time.Second)
		_, err := f.feed.SendMessage(ctx, author, "hi", "")
		require.NoError(t, err)
	}

	stats, err := f.dir.ListUsersWithMessageCounts(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	got := map[string]int64{}
	for _, s := range stats {
		got[s.User.Name] = s.MessageCount
	}
	assert.Equal(t, map[string]int64{"lurker": 0, "alice": 2, "bob": 1}, got)
	assert.Equal(t, "alice", stats[0].User.Name, "most recently seen first")
	assert.Equal(t, "lurker", stats[2].User.Name)
}

func TestMonotonicClock(t *testing.T) {
	wall := time.UnixMilli(5000)
	c := NewClock(func() time.Time { return wall })

	assert.Equal(t, int64(5000), c.Now())
	wall = time.UnixMilli(4000)
	assert.Equal(t, int64(5000), c.Now(), "wall clock stepped back")
	wall = time.UnixMilli(6000)
	assert.Equal(t, int64(6000), c.Now())
}

func bodies(msgs []*data.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Body
	}
	return out
}

func names(users []*data.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}
