package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

func nextEvent(t *testing.T, c *wsClient) wsEvent {
	t.Helper()
	select {
	case frame, ok := <-c.send:
		if !ok {
			t.Fatalf("send channel closed")
		}
		var ev wsEvent
		if err := json.Unmarshal(frame, &ev); err != nil {
			t.Fatalf("bad frame %s: %v", frame, err)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a frame")
	}
	return wsEvent{}
}

// nextSnapshot reads a snapshot frame and returns its subscription id and
// decoded payload.
func nextSnapshot(t *testing.T, c *wsClient) (string, *v1.WatchResponse) {
	t.Helper()
	ev := nextEvent(t, c)
	if ev.Type != "snapshot" {
		t.Fatalf("expected snapshot, got %q: %s", ev.Type, ev.Data)
	}
	var snap wsSnapshot
	if err := json.Unmarshal(ev.Data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	resp := &v1.WatchResponse{}
	if err := protojson.Unmarshal(snap.Snapshot, resp); err != nil {
		t.Fatalf("decode watch response %s: %v", snap.Snapshot, err)
	}
	return snap.ID, resp
}

func TestWSClient_Ping(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newWSClient(srv)
	defer c.close()

	c.handle([]byte(`{"type":"ping"}`))
	if ev := nextEvent(t, c); ev.Type != "pong" {
		t.Fatalf("expected pong, got %q", ev.Type)
	}

	// Garbage is ignored.
	c.handle([]byte(`not json`))
	select {
	case frame := <-c.send:
		t.Fatalf("unexpected frame %s", frame)
	default:
	}
}

func TestWSClient_SubscribeReceivesUpdates(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newWSClient(srv)
	defer c.close()

	c.handle([]byte(`{"type":"subscribe","data":{"id":"feed","query":"message_count"}}`))

	if ev := nextEvent(t, c); ev.Type != "subscribed" {
		t.Fatalf("expected subscribed, got %q", ev.Type)
	}
	id, snap := nextSnapshot(t, c)
	if id != "feed" || snap.GetCount() != 0 {
		t.Fatalf("unexpected initial snapshot %q: %v", id, snap)
	}

	if _, err := srv.SendMessage(context.Background(), &v1.SendMessageRequest{Author: "dave", Body: "hi"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	_, snap = nextSnapshot(t, c)
	if snap.GetCount() != 1 {
		t.Fatalf("expected count 1, got %d", snap.GetCount())
	}

	c.handle([]byte(`{"type":"unsubscribe","data":{"id":"feed"}}`))
	waitFor(t, "watcher stopped", func() bool { return srv.hub.Watchers() == 0 })
}

func TestWSClient_SubscribeErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newWSClient(srv)
	defer c.close()

	c.handle([]byte(`{"type":"subscribe","data":{"id":"x","query":"nope"}}`))
	ev := nextEvent(t, c)
	if ev.Type != "error" {
		t.Fatalf("expected error, got %q", ev.Type)
	}
	var e wsError
	_ = json.Unmarshal(ev.Data, &e)
	if e.ID != "x" || e.Message != `unknown query "nope"` {
		t.Fatalf("unexpected error payload: %+v", e)
	}

	c.handle([]byte(`{"type":"subscribe","data":{"id":"a","query":"message_count"}}`))
	nextEvent(t, c) // subscribed
	nextSnapshot(t, c)

	c.handle([]byte(`{"type":"subscribe","data":{"id":"a","query":"message_count"}}`))
	ev = nextEvent(t, c)
	if ev.Type != "error" {
		t.Fatalf("duplicate id should fail, got %q", ev.Type)
	}
}

func TestWSClient_CloseReleasesSubscriptions(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newWSClient(srv)

	c.handle([]byte(`{"type":"subscribe","data":{"query":"users_with_counts"}}`))
	nextEvent(t, c)
	nextSnapshot(t, c)

	c.close()
	if got := srv.hub.Watchers(); got != 0 {
		t.Fatalf("expected no watchers after close, got %d", got)
	}
	if err := c.push("pong", nil); err != errClientClosed {
		t.Fatalf("push after close = %v", err)
	}
	c.close()
}
