// Package mongo implements the chat stores on MongoDB collections.
package mongo

import (
	"context" // Used for cancellation and timeouts
	"errors"  // Error handling
	"fmt"     // Error wrapping

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"go.mongodb.org/mongo-driver/v2/bson"           // MongoDB document queries
	"go.mongodb.org/mongo-driver/v2/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/v2/mongo/options" // Find/update options
)

// userDoc is the BSON shape of a document in the "users" collection.
type userDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"name"`
	Email    string        `bson:"email,omitempty"`
	Avatar   string        `bson:"avatar,omitempty"`
	LastSeen int64         `bson:"lastSeen"`
}

func (d *userDoc) toUser() *data.User {
	return &data.User{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Email:    d.Email,
		Avatar:   d.Avatar,
		LastSeen: d.LastSeen,
	}
}

var _ data.UsersStore = (*UsersStore)(nil)

// UsersStore performs user DB operations against MongoDB.
type UsersStore struct {
	// coll is reference to "users" collection in MongoDB
	// Set via NewUsersStore() and used in all methods below
	coll *mongo.Collection
}

// NewUsersStore returns a UsersStore using the provided collection.
func NewUsersStore(coll *mongo.Collection) *UsersStore {
	return &UsersStore{coll: coll} // Store reference to MongoDB collection
}

// Insert adds a new user document and returns it with the generated ID.
func (u *UsersStore) Insert(ctx context.Context, user *data.User) (*data.User, error) {
	doc := &userDoc{
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		LastSeen: user.LastSeen,
	}

	// InsertOne adds the document; MongoDB generates the _id
	result, err := u.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// Extract MongoDB's auto-generated _id and populate in struct
	doc.ID = result.InsertedID.(bson.ObjectID)
	return doc.toUser(), nil
}

// Get finds a user by its hex ObjectID.
func (u *UsersStore) Get(ctx context.Context, id string) (*data.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document
		return nil, data.ErrNotFound
	}
	return u.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail returns the oldest user registered with the given email.
func (u *UsersStore) FindByEmail(ctx context.Context, email string) (*data.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

// FindByName returns the oldest user registered with the given name.
func (u *UsersStore) FindByName(ctx context.Context, name string) (*data.User, error) {
	return u.findOne(ctx, bson.M{"name": name})
}

// findOne runs a FindOne with a stable _id order so "first" is deterministic.
func (u *UsersStore) findOne(ctx context.Context, filter bson.M) (*data.User, error) {
	var doc userDoc
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	err := u.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, data.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toUser(), nil
}

// TouchLastSeen raises lastSeen to at using $max so concurrent touches never
// rewind it, and returns the document after the update.
func (u *UsersStore) TouchLastSeen(ctx context.Context, id string, at int64) (*data.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, data.ErrNotFound
	}

	update := bson.M{"$max": bson.M{"lastSeen": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err = u.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, data.ErrNotFound
		}
		return nil, fmt.Errorf("touch user: %w", err)
	}
	return doc.toUser(), nil
}

// List returns every user document.
func (u *UsersStore) List(ctx context.Context) ([]*data.User, error) {
	return u.find(ctx, bson.M{}, options.Find())
}

// ListSeenSince returns users active at or after since, most recent first.
func (u *UsersStore) ListSeenSince(ctx context.Context, since int64, limit int64) ([]*data.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lastSeen", Value: -1}}). // newest activity first
		SetLimit(limit)
	return u.find(ctx, bson.M{"lastSeen": bson.M{"$gte": since}}, opts)
}

// CountSeenSince counts users active at or after since.
func (u *UsersStore) CountSeenSince(ctx context.Context, since int64) (int64, error) {
	n, err := u.coll.CountDocuments(ctx, bson.M{"lastSeen": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (u *UsersStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*data.User, error) {
	cursor, err := u.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	// Ensure cursor is closed when done (cleanup)
	defer cursor.Close(ctx)

	var docs []*userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*data.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toUser())
	}
	return users, nil
}
