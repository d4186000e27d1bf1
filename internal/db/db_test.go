package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// These tests are integration tests and require a running MongoDB instance.
// Set MONGODB_URI in the environment before running them.

func TestNewAndCreateIndexes(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := New(ctx, uri, "chat_db_test")
	if err != nil {
		t.Fatalf("failed to connect to DB: %v", err)
	}
	defer func() {
		// drop the testing database and close connection
		_ = c.db.Drop(context.Background())
		_ = c.Close(context.Background())
	}()

	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("CreateIndexes failed: %v", err)
	}

	// running it again must be idempotent, including the rooms collection
	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("second CreateIndexes failed: %v", err)
	}

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestIsNamespaceExists(t *testing.T) {
	if !isNamespaceExists(mongo.CommandError{Code: 48, Name: "NamespaceExists"}) {
		t.Fatal("expected code 48 to be recognized")
	}
	if isNamespaceExists(mongo.CommandError{Code: 13}) {
		t.Fatal("unexpected match for code 13")
	}
	if isNamespaceExists(errors.New("boom")) {
		t.Fatal("unexpected match for plain error")
	}
}
