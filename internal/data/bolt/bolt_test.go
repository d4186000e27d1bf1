package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBackend(t *testing.T) *data.Backend {
	t.Helper()
	b, err := NewBackend(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close(context.Background()) })
	return b
}

func TestUsers_InsertAndLookup(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	first, err := b.Users.Insert(ctx, &data.User{Name: "alice", Email: "alice@example.com", LastSeen: 10})
	require.NoError(t, err)
	second, err := b.Users.Insert(ctx, &data.User{Name: "alice", LastSeen: 20})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := b.Users.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	byEmail, err := b.Users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byEmail.ID)

	byName, err := b.Users.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byName.ID, "oldest match wins")

	_, err = b.Users.FindByName(ctx, "ali")
	assert.ErrorIs(t, err, data.ErrNotFound)
	_, err = b.Users.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, data.ErrNotFound)
	_, err = b.Users.Get(ctx, "missing")
	assert.ErrorIs(t, err, data.ErrNotFound)

	all, err := b.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
}

func TestUsers_TouchNeverRewinds(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	u, err := b.Users.Insert(ctx, &data.User{Name: "bob", LastSeen: 100})
	require.NoError(t, err)

	got, err := b.Users.TouchLastSeen(ctx, u.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.LastSeen)

	got, err = b.Users.TouchLastSeen(ctx, u.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(200), got.LastSeen)

	_, err = b.Users.TouchLastSeen(ctx, "nope", 1)
	assert.ErrorIs(t, err, data.ErrNotFound)
}

func TestUsers_SeenSince(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	for _, u := range []data.User{
		{Name: "old", LastSeen: 100},
		{Name: "mid", LastSeen: 500},
		{Name: "new", LastSeen: 900},
	} {
		_, err := b.Users.Insert(ctx, &u)
		require.NoError(t, err)
	}

	got, err := b.Users.ListSeenSince(ctx, 500, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)

	got, err = b.Users.ListSeenSince(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)

	n, err := b.Users.CountSeenSince(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMessages_RecentOrdering(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	alice, err := b.Users.Insert(ctx, &data.User{Name: "alice"})
	require.NoError(t, err)
	bob, err := b.Users.Insert(ctx, &data.User{Name: "bob"})
	require.NoError(t, err)

	for _, m := range []data.Message{
		{UserID: alice.ID, Author: "alice", Body: "a1", Timestamp: 10},
		{UserID: bob.ID, Author: "bob", Body: "b1", Timestamp: 20},
		{UserID: alice.ID, Author: "alice", Body: "a2", Timestamp: 30},
		{UserID: bob.ID, Author: "bob", Body: "b2", Timestamp: 30},
	} {
		_, err := b.Messages.Insert(ctx, &m)
		require.NoError(t, err)
	}

	recent, err := b.Messages.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "a2", "b1"}, bodies(recent))

	all, err := b.Messages.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := b.Messages.RecentForUser(ctx, alice.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1"}, bodies(mine))

	none, err := b.Messages.RecentForUser(ctx, "ghost", 50)
	require.NoError(t, err)
	assert.Empty(t, none)

	total, err := b.Messages.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	n, err := b.Messages.CountForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMessages_InsertRequiresUser(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Messages.Insert(context.Background(), &data.Message{UserID: "ghost", Author: "x", Body: "y", Timestamp: 1})
	assert.ErrorContains(t, err, "unknown user")
}

func TestBackend_PingAfterClose(t *testing.T) {
	b, err := NewBackend(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)

	require.NoError(t, b.Ping(context.Background()))
	require.NoError(t, b.Close(context.Background()))
	assert.Error(t, b.Ping(context.Background()))
}

func TestTimestampKeysSortNumerically(t *testing.T) {
	assert.Less(t, string(ts(-5)), string(ts(0)))
	assert.Less(t, string(ts(9)), string(ts(10)))
	assert.Less(t, string(ts(255)), string(ts(256)))
}

func bodies(msgs []*data.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Body
	}
	return out
}
