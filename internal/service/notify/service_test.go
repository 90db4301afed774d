package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/store/memory"
	"socialstream/internal/ws"
)

type failingStore struct {
	repository.Store
	err error
}

func (f *failingStore) CreateNotification(_ context.Context, _ model.Notification) (model.Notification, error) {
	return model.Notification{}, f.err
}

func runHub(t *testing.T) *ws.Hub {
	t.Helper()
	hub := ws.NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func connect(t *testing.T, hub *ws.Hub, connID, userID string) *ws.Client {
	t.Helper()
	client := ws.NewClient(connID, userID, nil, hub, 8, zap.NewNop())
	hub.Register(client)
	return client
}

func receive(t *testing.T, client *ws.Client) ws.Event {
	t.Helper()
	select {
	case event := <-client.Send:
		return event
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected an event")
		return ws.Event{}
	}
}

func expectSilence(t *testing.T, client *ws.Client) {
	t.Helper()
	select {
	case event := <-client.Send:
		t.Fatalf("unexpected event %s", event.Kind)
	case <-time.After(100 * time.Millisecond):
	}
}

func seedUser(t *testing.T, store repository.Store, id, username string) {
	t.Helper()
	_, err := store.CreateUser(context.Background(), model.User{ID: id, Username: username})
	require.NoError(t, err)
}

func TestCreatePersistsAndPushes(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	seedUser(t, store, "alice", "alice")
	seedUser(t, store, "bob", "bob")
	alice := connect(t, hub, "conn-1", "alice")

	created, err := svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeLike, "bob liked your comment", "c1", domain.EntityTypeComment)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "alice", created.RecipientID)
	require.NotNil(t, created.Sender)
	require.Equal(t, "bob", created.Sender.Username)

	event := receive(t, alice)
	require.Equal(t, ws.EventNotification, event.Kind)
	notification, ok := event.Payload.(model.Notification)
	require.True(t, ok)
	require.Equal(t, created.ID, notification.ID)
	require.NotNil(t, notification.Sender)
}

func TestCreateSuppressesSelfNotification(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	seedUser(t, store, "alice", "alice")
	alice := connect(t, hub, "conn-1", "alice")

	created, err := svc.Create(context.Background(), "alice", "alice", domain.NotificationTypeLike, "alice liked your comment", "c1", domain.EntityTypeComment)
	require.NoError(t, err)
	require.Nil(t, created)

	expectSilence(t, alice)
	records, err := store.ListNotifications(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestCreateOfflineRecipientStillPersists(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	seedUser(t, store, "alice", "alice")
	seedUser(t, store, "bob", "bob")

	created, err := svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeReply, "bob replied to your comment", "c2", domain.EntityTypeComment)
	require.NoError(t, err)
	require.NotNil(t, created)

	records, err := store.ListNotifications(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.False(t, records[0].Read)
}

func TestCreateFollowUsesFollowEventName(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	seedUser(t, store, "alice", "alice")
	seedUser(t, store, "bob", "bob")
	alice := connect(t, hub, "conn-1", "alice")

	_, err := svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeFollow, "bob started following you", "bob", domain.EntityTypeUser)
	require.NoError(t, err)

	event := receive(t, alice)
	require.Equal(t, ws.EventFollowNotification, event.Kind)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())

	_, err := svc.Create(context.Background(), "alice", "bob", "shout", "hey", "", "")
	require.ErrorIs(t, err, domain.ErrInvalidNotificationType)
}

func TestCreateStoreError(t *testing.T) {
	storeErr := errors.New("store failed")
	store := &failingStore{Store: memory.New(zap.NewNop()), err: storeErr}
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	alice := connect(t, hub, "conn-1", "alice")

	_, err := svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeLike, "bob liked your comment", "c1", domain.EntityTypeComment)
	require.ErrorIs(t, err, storeErr)
	expectSilence(t, alice)
}

func TestReadStateOperations(t *testing.T) {
	store := memory.New(zap.NewNop())
	hub := runHub(t)
	svc := NewService(store, hub, zap.NewNop())
	seedUser(t, store, "alice", "alice")
	seedUser(t, store, "bob", "bob")

	first, err := svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeLike, "bob liked your comment", "c1", domain.EntityTypeComment)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "alice", "bob", domain.NotificationTypeReply, "bob replied to your comment", "c2", domain.EntityTypeComment)
	require.NoError(t, err)

	count, err := svc.UnreadCount(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	marked, err := svc.MarkRead(context.Background(), first.ID, "alice")
	require.NoError(t, err)
	require.True(t, marked.Read)

	count, err = svc.UnreadCount(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Recipient scoping: someone else cannot mark alice's notification.
	_, err = svc.MarkRead(context.Background(), first.ID, "mallory")
	require.ErrorIs(t, err, domain.ErrNotificationNotFound)

	require.NoError(t, svc.MarkAllRead(context.Background(), "alice"))
	count, err = svc.UnreadCount(context.Background(), "alice")
	require.NoError(t, err)
	require.Zero(t, count)

	records, err := svc.List(context.Background(), "alice", 50)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].Sender)
	require.Equal(t, "bob", records[0].Sender.Username)
}
