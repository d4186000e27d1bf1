package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	bolt "go.etcd.io/bbolt"
)

// UsersStore implements data.UsersStore on the users bucket.
type UsersStore struct {
	d *DB
}

func NewUsersStore(d *DB) *UsersStore {
	return &UsersStore{d: d}
}

func (s *UsersStore) Insert(ctx context.Context, user *data.User) (*data.User, error) {
	u := *user
	u.ID = newID()

	err := s.d.db.Update(func(tx *bolt.Tx) error {
		if err := putUser(tx, &u); err != nil {
			return err
		}
		if u.Email != "" {
			if err := tx.Bucket(bucketUsersByEmail).Put(indexKey([]byte(u.Email), []byte(u.ID)), nil); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketUsersByName).Put(indexKey([]byte(u.Name), []byte(u.ID)), nil)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsersStore) Get(ctx context.Context, id string) (*data.User, error) {
	var u *data.User
	err := s.d.db.View(func(tx *bolt.Tx) error {
		var err error
		u, err = getUser(tx, id)
		return err
	})
	return u, err
}

func (s *UsersStore) FindByEmail(ctx context.Context, email string) (*data.User, error) {
	return s.findFirst(bucketUsersByEmail, email)
}

func (s *UsersStore) FindByName(ctx context.Context, name string) (*data.User, error) {
	return s.findFirst(bucketUsersByName, name)
}

func (s *UsersStore) TouchLastSeen(ctx context.Context, id string, at int64) (*data.User, error) {
	var u *data.User
	err := s.d.db.Update(func(tx *bolt.Tx) error {
		var err error
		if u, err = getUser(tx, id); err != nil {
			return err
		}
		if at <= u.LastSeen {
			return nil
		}
		u.LastSeen = at
		return putUser(tx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UsersStore) List(ctx context.Context) ([]*data.User, error) {
	return s.scan(func(*data.User) bool { return true })
}

func (s *UsersStore) ListSeenSince(ctx context.Context, since int64, limit int64) ([]*data.User, error) {
	users, err := s.scan(func(u *data.User) bool { return u.LastSeen >= since })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].LastSeen > users[j].LastSeen })
	if limit > 0 && int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (s *UsersStore) CountSeenSince(ctx context.Context, since int64) (int64, error) {
	users, err := s.scan(func(u *data.User) bool { return u.LastSeen >= since })
	return int64(len(users)), err
}

func (s *UsersStore) findFirst(index []byte, value string) (*data.User, error) {
	var u *data.User
	err := s.d.db.View(func(tx *bolt.Tx) error {
		prefix := append([]byte(value), sep)
		c := tx.Bucket(index).Cursor()
		k, _ := c.Seek(prefix)
		if k == nil || !bytes.HasPrefix(k, prefix) {
			return data.ErrNotFound
		}
		var err error
		u, err = getUser(tx, string(k[len(prefix):]))
		return err
	})
	return u, err
}

func (s *UsersStore) scan(keep func(*data.User) bool) ([]*data.User, error) {
	users := []*data.User{}
	err := s.d.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUsers).ForEach(func(k, v []byte) error {
			var u data.User
			if err := json.Unmarshal(v, &u); err != nil {
				return err
			}
			if keep(&u) {
				users = append(users, &u)
			}
			return nil
		})
	})
	return users, err
}

func getUser(tx *bolt.Tx, id string) (*data.User, error) {
	v := tx.Bucket(bucketUsers).Get([]byte(id))
	if v == nil {
		return nil, data.ErrNotFound
	}
	var u data.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func putUser(tx *bolt.Tx, u *data.User) error {
	v, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketUsers).Put([]byte(u.ID), v)
}
