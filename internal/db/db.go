// Package db manages MongoDB connections and collections.
package db

import (
	"context" // For connection timeout/cancellation
	"errors"  // Command error inspection
	"fmt"     // Error formatting
	"time"    // Duration for timeouts

	"go.mongodb.org/mongo-driver/v2/bson"           // Ordered index keys
	"go.mongodb.org/mongo-driver/v2/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/v2/mongo/options"  // MongoDB options
	"go.mongodb.org/mongo-driver/v2/mongo/readpref" // MongoDB read preference
)

// DefaultDatabase is used when no database name is configured.
const DefaultDatabase = "chat_db"

// Client wraps mongo.Client and exposes collections.
type Client struct {
	// client is the underlying MongoDB connection (thread-safe, can be reused)
	client *mongo.Client

	// db is reference to the chat database within MongoDB
	// Collections ("users", "messages", "rooms") are accessed via this db reference
	db *mongo.Database
}

// New connects to MongoDB, verifies the connection and returns a Client bound
// to database (DefaultDatabase when empty).
func New(ctx context.Context, mongoURI, database string) (*Client, error) {
	if database == "" {
		database = DefaultDatabase
	}

	// SetConnectTimeout: fail fast if MongoDB is unreachable
	opts := options.Client().
		ApplyURI(mongoURI).                 // Parse connection string
		SetConnectTimeout(10 * time.Second) // Max time to connect

	// This doesn't actually connect yet, just creates the client
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	c := &Client{
		client: client,
		db:     client.Database(database),
	}

	// Ping is the actual connection test
	if err := c.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return c, nil
}

// Ping checks the primary is reachable within five seconds.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// UsersCollection returns the users collection.
func (c *Client) UsersCollection() *mongo.Collection {
	return c.db.Collection("users")
}

// MessagesCollection returns the messages collection.
func (c *Client) MessagesCollection() *mongo.Collection {
	return c.db.Collection("messages")
}

// RoomsCollection returns the rooms collection. It is provisioned but unused.
func (c *Client) RoomsCollection() *mongo.Collection {
	return c.db.Collection("rooms")
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// CreateIndexes creates the indexes backing every users and messages query.
func (c *Client) CreateIndexes(ctx context.Context) error {
	// ===== USERS COLLECTION INDEXES =====
	// email and name are lookup paths for identity resolution; neither is
	// unique because concurrent resolutions may legitimately race.
	usersIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
		// Presence queries filter and sort on lastSeen
		{Keys: bson.D{{Key: "lastSeen", Value: -1}}},
	}

	if _, err := c.UsersCollection().Indexes().CreateMany(ctx, usersIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	// ===== MESSAGES COLLECTION INDEXES =====
	messageIndexes := []mongo.IndexModel{
		// Global feed: newest N by timestamp
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		// Per-user counts
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		// Per-user feed: newest N of one user
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	if _, err := c.MessagesCollection().Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	// rooms carries no index; creating it up front keeps the schema visible
	err := c.db.CreateCollection(ctx, "rooms")
	if err != nil && !isNamespaceExists(err) {
		return fmt.Errorf("failed to create rooms collection: %w", err)
	}

	return nil
}

// isNamespaceExists reports whether err is MongoDB's "collection already exists".
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48 // NamespaceExists
	}
	return false
}
