package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"socialstream/internal/model"
)

func TestEventWireFrame(t *testing.T) {
	event := LikeUpdateEvent("c1", true, "alice")
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var frame struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &frame))
	require.Equal(t, "like_update", frame.Event)

	var payload model.LikeUpdateEvent
	require.NoError(t, json.Unmarshal(frame.Data, &payload))
	require.Equal(t, "c1", payload.CommentID)
	require.True(t, payload.Liked)
	require.Equal(t, "alice", payload.UserID)
}

func TestEventConstructorsUseCatalogNames(t *testing.T) {
	require.Equal(t, EventNewComment, NewCommentEvent(model.Comment{}).Kind)
	require.Equal(t, EventNewReply, NewReplyEvent(model.Comment{}, "p1").Kind)
	require.Equal(t, EventCommentUpdated, CommentUpdatedEvent("c1", "hi").Kind)
	require.Equal(t, EventCommentDeleted, CommentDeletedEvent("c1").Kind)
	require.Equal(t, EventNotification, NotificationEvent(model.Notification{}).Kind)
	require.Equal(t, EventFollowNotification, FollowNotificationEvent(model.Notification{}).Kind)
}
