// Package bolt implements the chat stores on an embedded bbolt file. Records
// are JSON values keyed by time-ordered UUIDs, so key order is insertion order.
// Secondary lookups use index buckets whose keys sort the way the queries scan.
package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketUsers          = []byte("users")
	bucketMessages       = []byte("messages")
	bucketRooms          = []byte("rooms")
	bucketUsersByEmail   = []byte("users_by_email")
	bucketUsersByName    = []byte("users_by_name")
	bucketMessagesByTime = []byte("messages_by_time")
	bucketMessagesByUser = []byte("messages_by_user")
)

const sep = 0x00

// DB wraps the bbolt handle shared by the users and messages stores.
type DB struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt file at path and makes sure every bucket
// exists.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketUsers,
			bucketMessages,
			bucketRooms,
			bucketUsersByEmail,
			bucketUsersByName,
			bucketMessagesByTime,
			bucketMessagesByUser,
		}

		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Ping fails once the file has been closed.
func (d *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.db.View(func(*bolt.Tx) error { return nil })
}

// Close closes the database
func (d *DB) Close() error {
	return d.db.Close()
}

// NewBackend opens path and returns the bbolt stores.
func NewBackend(path string) (*data.Backend, error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &data.Backend{
		Name:     "bolt",
		Users:    NewUsersStore(d),
		Messages: NewMessagesStore(d),
		Ping:     d.Ping,
		Close:    func(context.Context) error { return d.Close() },
	}, nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// indexKey joins parts with a zero byte so a prefix scan on the first part
// cannot match a longer value.
func indexKey(parts ...[]byte) []byte {
	var k []byte
	for i, p := range parts {
		if i > 0 {
			k = append(k, sep)
		}
		k = append(k, p...)
	}
	return k
}

func ts(ms int64) []byte {
	b := make([]byte, 8)
	// Shifting the sign bit keeps negative timestamps ordered before positive ones.
	binary.BigEndian.PutUint64(b, uint64(ms)^(1<<63))
	return b
}
