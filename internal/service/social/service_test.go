package social

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/service/notify"
	"socialstream/internal/store/memory"
	"socialstream/internal/ws"
)

type fixture struct {
	store repository.Store
	hub   *ws.Hub
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New(zap.NewNop())
	hub := ws.NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	notifySvc := notify.NewService(store, hub, zap.NewNop())
	return &fixture{store: store, hub: hub, svc: NewService(store, notifySvc, zap.NewNop())}
}

func (f *fixture) seedUser(t *testing.T, id, username string) {
	t.Helper()
	_, err := f.store.CreateUser(context.Background(), model.User{ID: id, Username: username})
	require.NoError(t, err)
}

func (f *fixture) connect(t *testing.T, connID, userID string) *ws.Client {
	t.Helper()
	client := ws.NewClient(connID, userID, nil, f.hub, 8, zap.NewNop())
	f.hub.Register(client)
	return client
}

func TestFollowNotifiesTarget(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")
	f.seedUser(t, "bob", "bob")
	aliceConn := f.connect(t, "conn-a", "alice")
	bobConn := f.connect(t, "conn-b", "bob")

	require.NoError(t, f.svc.Follow(context.Background(), "bob", "alice"))

	select {
	case event := <-aliceConn.Send:
		require.Equal(t, ws.EventFollowNotification, event.Kind)
		notification, ok := event.Payload.(model.Notification)
		require.True(t, ok)
		require.Equal(t, domain.NotificationTypeFollow, notification.Type)
		require.Contains(t, notification.Message, "bob")
		require.Equal(t, "bob", notification.EntityID)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected a follow notification")
	}

	select {
	case event := <-bobConn.Send:
		t.Fatalf("unexpected event %s for the follower", event.Kind)
	case <-time.After(100 * time.Millisecond):
	}

	following, err := f.svc.IsFollowing(context.Background(), "bob", "alice")
	require.NoError(t, err)
	require.True(t, following)
}

func TestFollowSelf(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")

	require.ErrorIs(t, f.svc.Follow(context.Background(), "alice", "alice"), domain.ErrSelfFollow)

	following, err := f.svc.IsFollowing(context.Background(), "alice", "alice")
	require.NoError(t, err)
	require.False(t, following)
}

func TestFollowUnknownTarget(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "bob", "bob")

	require.ErrorIs(t, f.svc.Follow(context.Background(), "bob", "ghost"), domain.ErrUserNotFound)
}

func TestUnfollow(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")
	f.seedUser(t, "bob", "bob")

	require.NoError(t, f.svc.Follow(context.Background(), "bob", "alice"))
	require.NoError(t, f.svc.Unfollow(context.Background(), "bob", "alice"))

	following, err := f.svc.IsFollowing(context.Background(), "bob", "alice")
	require.NoError(t, err)
	require.False(t, following)

	followers, err := f.svc.Followers(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, followers)
}

func TestFollowersAndFollowing(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")
	f.seedUser(t, "bob", "bob")
	f.seedUser(t, "carol", "carol")

	require.NoError(t, f.svc.Follow(context.Background(), "bob", "alice"))
	require.NoError(t, f.svc.Follow(context.Background(), "carol", "alice"))
	require.NoError(t, f.svc.Follow(context.Background(), "alice", "carol"))

	followers, err := f.svc.Followers(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, followers, 2)
	names := []string{followers[0].Username, followers[1].Username}
	require.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := f.svc.Following(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, "carol", following[0].Username)
}

func TestProfileCounts(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")
	f.seedUser(t, "bob", "bob")

	require.NoError(t, f.svc.Follow(context.Background(), "bob", "alice"))
	_, err := f.store.CreateComment(context.Background(), model.Comment{Content: "hi", AuthorID: "alice"})
	require.NoError(t, err)
	_, err = f.store.CreateComment(context.Background(), model.Comment{Content: "again", AuthorID: "alice"})
	require.NoError(t, err)

	profile, err := f.svc.Profile(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 1, profile.FollowersCount)
	require.Zero(t, profile.FollowingCount)
	require.Equal(t, 2, profile.CommentsCount)

	byName, err := f.svc.ProfileByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, profile.User.ID, byName.User.ID)

	_, err = f.svc.Profile(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "alice", "alice")

	updated, err := f.svc.UpdateProfile(context.Background(), "alice", "hello there", "https://cdn.example.com/a.png")
	require.NoError(t, err)
	require.Equal(t, "hello there", updated.Bio)
	require.Equal(t, "https://cdn.example.com/a.png", updated.AvatarURL)

	fetched, err := f.store.GetUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "hello there", fetched.Bio)
}
