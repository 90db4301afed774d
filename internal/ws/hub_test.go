package ws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialstream/internal/model"
)

func newTestClient(id, userID string, hub *Hub) *Client {
	return NewClient(id, userID, nil, hub, 8, zap.NewNop())
}

func runHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func expectEvent(t *testing.T, client *Client, kind EventKind) Event {
	t.Helper()
	select {
	case event := <-client.Send:
		require.Equal(t, kind, event.Kind)
		return event
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("expected %s event", kind)
		return Event{}
	}
}

func expectNoEvent(t *testing.T, client *Client) {
	t.Helper()
	select {
	case event := <-client.Send:
		t.Fatalf("unexpected event %s", event.Kind)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := runHub(t)
	alice := newTestClient("conn-1", "alice", hub)
	bob := newTestClient("conn-2", "bob", hub)
	hub.Register(alice)
	hub.Register(bob)

	hub.Broadcast(CommentDeletedEvent("c1"))

	expectEvent(t, alice, EventCommentDeleted)
	expectEvent(t, bob, EventCommentDeleted)
}

func TestHubSendToUserTargetsOnlyThatUser(t *testing.T) {
	hub := runHub(t)
	alice := newTestClient("conn-1", "alice", hub)
	bob := newTestClient("conn-2", "bob", hub)
	hub.Register(alice)
	hub.Register(bob)

	hub.SendToUser("alice", NotificationEvent(model.Notification{ID: "n1", RecipientID: "alice"}))

	event := expectEvent(t, alice, EventNotification)
	notification, ok := event.Payload.(model.Notification)
	require.True(t, ok)
	require.Equal(t, "n1", notification.ID)
	expectNoEvent(t, bob)
}

func TestHubSendToOfflineUserIsNoop(t *testing.T) {
	hub := runHub(t)
	bob := newTestClient("conn-1", "bob", hub)
	hub.Register(bob)

	hub.SendToUser("nobody", NotificationEvent(model.Notification{ID: "n1"}))

	// Other users keep receiving; nothing was delivered for the offline one.
	expectNoEvent(t, bob)
	hub.Broadcast(CommentDeletedEvent("c1"))
	expectEvent(t, bob, EventCommentDeleted)
}

func TestHubUnregisterNeverRegisteredClient(t *testing.T) {
	hub := runHub(t)
	alice := newTestClient("conn-1", "alice", hub)
	hub.Register(alice)

	// A connection that failed authentication never got registered;
	// unregistering it must not disturb anyone else.
	stranger := newTestClient("conn-2", "", hub)
	hub.Unregister(stranger)

	hub.SendToUser("alice", NotificationEvent(model.Notification{ID: "n1"}))
	expectEvent(t, alice, EventNotification)
}

func TestHubUnregisterStopsDelivery(t *testing.T) {
	hub := runHub(t)
	alice := newTestClient("conn-1", "alice", hub)
	hub.Register(alice)
	hub.Unregister(alice)

	// The send channel is closed on unregister.
	select {
	case _, ok := <-alice.Send:
		require.False(t, ok)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected send channel to be closed")
	}

	// Targeted sends for the departed user are discarded.
	hub.SendToUser("alice", NotificationEvent(model.Notification{ID: "n1"}))
	bob := newTestClient("conn-2", "bob", hub)
	hub.Register(bob)
	hub.Broadcast(CommentDeletedEvent("c1"))
	expectEvent(t, bob, EventCommentDeleted)
}

func TestHubRoomJoinLeave(t *testing.T) {
	hub := runHub(t)
	alice := newTestClient("conn-1", "alice", hub)
	bob := newTestClient("conn-2", "bob", hub)
	hub.Register(alice)
	hub.Register(bob)

	hub.JoinRoom(bob, UserRoom("alice"))
	hub.SendToUser("alice", NotificationEvent(model.Notification{ID: "n1"}))
	expectEvent(t, alice, EventNotification)
	expectEvent(t, bob, EventNotification)

	hub.LeaveRoom(bob, UserRoom("alice"))
	hub.SendToUser("alice", NotificationEvent(model.Notification{ID: "n2"}))
	expectEvent(t, alice, EventNotification)
	expectNoEvent(t, bob)
}

func TestHubDropsWhenClientBufferFull(t *testing.T) {
	hub := runHub(t)
	slow := NewClient("conn-1", "alice", nil, hub, 1, zap.NewNop())
	hub.Register(slow)

	hub.Broadcast(CommentDeletedEvent("c1"))
	hub.Broadcast(CommentDeletedEvent("c2"))
	// Let the run loop process both broadcasts before draining; the second
	// one overflows the buffer and is dropped.
	time.Sleep(100 * time.Millisecond)

	expectEvent(t, slow, EventCommentDeleted)
	expectNoEvent(t, slow)
}
