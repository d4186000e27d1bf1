package mongo

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// messageDoc is the BSON shape of a document in the "messages" collection.
type messageDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    bson.ObjectID `bson:"userId"`
	Author    string        `bson:"author"`
	Body      string        `bson:"body"`
	Timestamp int64         `bson:"timestamp"`
}

func (d *messageDoc) toMessage() *data.Message {
	return &data.Message{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Author:    d.Author,
		Body:      d.Body,
		Timestamp: d.Timestamp,
	}
}

// newestFirst orders by timestamp and breaks ties by insertion order.
var newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}

var _ data.MessagesStore = (*MessagesStore)(nil)

// MessagesStore provides message database operations.
type MessagesStore struct {
	// coll is reference to "messages" collection in MongoDB
	// Set via NewMessagesStore() and used in all methods below
	coll *mongo.Collection
}

// NewMessagesStore returns a MessagesStore using given collection.
func NewMessagesStore(coll *mongo.Collection) *MessagesStore {
	return &MessagesStore{coll: coll} // Store reference to MongoDB collection
}

// Insert stores a message document and returns the saved record.
func (m *MessagesStore) Insert(ctx context.Context, msg *data.Message) (*data.Message, error) {
	// userId references the users collection, so it must be an ObjectID
	uid, err := bson.ObjectIDFromHex(msg.UserID)
	if err != nil {
		return nil, fmt.Errorf("insert message: invalid user id %q: %w", msg.UserID, err)
	}

	doc := &messageDoc{
		UserID:    uid,
		Author:    msg.Author,
		Body:      msg.Body,
		Timestamp: msg.Timestamp,
	}

	result, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	// Extract MongoDB's auto-generated _id and populate in struct
	doc.ID = result.InsertedID.(bson.ObjectID)
	return doc.toMessage(), nil
}

// Recent returns the limit newest messages, newest first.
func (m *MessagesStore) Recent(ctx context.Context, limit int64) ([]*data.Message, error) {
	// Served by the timestamp index
	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	return m.find(ctx, bson.M{}, opts)
}

// RecentForUser returns the limit newest messages of one user, newest first.
func (m *MessagesStore) RecentForUser(ctx context.Context, userID string, limit int64) ([]*data.Message, error) {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		// No message can reference a malformed id
		return []*data.Message{}, nil
	}

	// Served by the composite (userId, timestamp) index
	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	return m.find(ctx, bson.M{"userId": uid}, opts)
}

// Count returns the total number of messages.
func (m *MessagesStore) Count(ctx context.Context) (int64, error) {
	n, err := m.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

// CountForUser returns the number of messages posted by userID.
func (m *MessagesStore) CountForUser(ctx context.Context, userID string) (int64, error) {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil
	}

	n, err := m.coll.CountDocuments(ctx, bson.M{"userId": uid})
	if err != nil {
		return 0, fmt.Errorf("count user messages: %w", err)
	}
	return n, nil
}

func (m *MessagesStore) find(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*data.Message, error) {
	// Execute the query; Find returns a cursor to iterate results
	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	// Ensure cursor is closed when done (cleanup)
	defer cursor.Close(ctx)

	// All() reads all documents from cursor and decodes them
	var docs []*messageDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	messages := make([]*data.Message, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, d.toMessage())
	}
	return messages, nil
}
