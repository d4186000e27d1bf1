package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	bolt "go.etcd.io/bbolt"
)

// MessagesStore implements data.MessagesStore on the messages bucket.
//
// messages_by_time keys are timestamp|id and messages_by_user keys are
// userID|timestamp|id, so a reverse cursor walk yields newest first with
// insertion order breaking timestamp ties.
type MessagesStore struct {
	d *DB
}

func NewMessagesStore(d *DB) *MessagesStore {
	return &MessagesStore{d: d}
}

func (s *MessagesStore) Insert(ctx context.Context, msg *data.Message) (*data.Message, error) {
	m := *msg
	m.ID = newID()

	err := s.d.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketUsers).Get([]byte(m.UserID)) == nil {
			return fmt.Errorf("insert message: unknown user %q", m.UserID)
		}
		v, err := json.Marshal(&m)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketMessages).Put([]byte(m.ID), v); err != nil {
			return err
		}
		id := []byte(m.ID)
		if err := tx.Bucket(bucketMessagesByTime).Put(indexKey(ts(m.Timestamp), id), id); err != nil {
			return err
		}
		return tx.Bucket(bucketMessagesByUser).Put(indexKey([]byte(m.UserID), ts(m.Timestamp), id), id)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MessagesStore) Recent(ctx context.Context, limit int64) ([]*data.Message, error) {
	return s.newestFirst(bucketMessagesByTime, nil, limit)
}

func (s *MessagesStore) RecentForUser(ctx context.Context, userID string, limit int64) ([]*data.Message, error) {
	return s.newestFirst(bucketMessagesByUser, append([]byte(userID), sep), limit)
}

func (s *MessagesStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.d.db.View(func(tx *bolt.Tx) error {
		n = int64(tx.Bucket(bucketMessages).Stats().KeyN)
		return nil
	})
	return n, err
}

func (s *MessagesStore) CountForUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	prefix := append([]byte(userID), sep)
	err := s.d.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketMessagesByUser).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// newestFirst walks index backwards from the end of prefix and loads at most
// limit messages. A nil prefix walks the whole bucket.
func (s *MessagesStore) newestFirst(index, prefix []byte, limit int64) ([]*data.Message, error) {
	msgs := []*data.Message{}
	err := s.d.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(index).Cursor()
		byID := tx.Bucket(bucketMessages)

		var k, id []byte
		if prefix == nil {
			k, id = c.Last()
		} else {
			k, id = seekLast(c, prefix)
		}
		for ; k != nil && bytes.HasPrefix(k, prefix); k, id = c.Prev() {
			if limit > 0 && int64(len(msgs)) >= limit {
				break
			}
			v := byID.Get(id)
			if v == nil {
				continue
			}
			var m data.Message
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			msgs = append(msgs, &m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// seekLast positions c on the last key that starts with prefix.
func seekLast(c *bolt.Cursor, prefix []byte) ([]byte, []byte) {
	upper := append(bytes.Clone(prefix[:len(prefix)-1]), prefix[len(prefix)-1]+1)
	if k, _ := c.Seek(upper); k == nil {
		return c.Last()
	}
	return c.Prev()
}
