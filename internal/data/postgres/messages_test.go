package postgres

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messageCols = []string{"id", "user_id", "author", "body", "timestamp_ms"}

func TestMessagesInsert(t *testing.T) {
	db, mock := newMock(t)
	store := NewMessagesStore(db)
	uid := uuid.NewString()

	mock.ExpectExec(q(insertMessageQuery)).
		WithArgs(sqlmock.AnyArg(), uid, "alice", "hello", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := store.Insert(context.Background(), &data.Message{UserID: uid, Author: "alice", Body: "hello", Timestamp: 77})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, uid, got.UserID)
}

func TestMessagesInsert_RejectsMalformedUserID(t *testing.T) {
	db, _ := newMock(t)
	store := NewMessagesStore(db)

	_, err := store.Insert(context.Background(), &data.Message{UserID: "nope", Author: "a", Body: "b"})
	assert.Error(t, err)
}

func TestMessagesRecent(t *testing.T) {
	db, mock := newMock(t)
	store := NewMessagesStore(db)
	uid := uuid.NewString()

	mock.ExpectQuery(q(recentMessagesQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow("m2", uid, "alice", "second", int64(20)).
			AddRow("m1", uid, "alice", "first", int64(10)))

	got, err := store.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(20), got[0].Timestamp)
	assert.Equal(t, "first", got[1].Body)
}

func TestMessagesRecentForUser_MalformedID(t *testing.T) {
	db, _ := newMock(t)
	store := NewMessagesStore(db)

	got, err := store.RecentForUser(context.Background(), "x", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMessagesRecentForUser(t *testing.T) {
	db, mock := newMock(t)
	store := NewMessagesStore(db)
	uid := uuid.NewString()

	mock.ExpectQuery(q(recentUserMessagesQuery)).
		WithArgs(uid, int64(50)).
		WillReturnRows(sqlmock.NewRows(messageCols).AddRow("m1", uid, "bob", "yo", int64(5)))

	got, err := store.RecentForUser(context.Background(), uid, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uid, got[0].UserID)
}

func TestMessagesCounts(t *testing.T) {
	db, mock := newMock(t)
	store := NewMessagesStore(db)
	uid := uuid.NewString()

	mock.ExpectQuery(q(countMessagesQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(q(countUserMessagesQuery)).
		WithArgs(uid).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	n, err := store.CountForUser(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestMessagesCount_DBError(t *testing.T) {
	db, mock := newMock(t)
	store := NewMessagesStore(db)

	mock.ExpectQuery(q(countMessagesQuery)).WillReturnError(errors.New("conn reset"))

	_, err := store.Count(context.Background())
	assert.ErrorContains(t, err, "conn reset")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestRunMigrations_UsesEmbeddedDir(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, "migrations", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err := RunMigrations(context.Background(), nil)
	assert.ErrorContains(t, err, "migrate: boom")
}
