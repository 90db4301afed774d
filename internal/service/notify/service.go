package notify

import (
	"context"

	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/ws"
)

// Service owns notification creation and delivery. Every producer funnels
// through Create, so self-notification suppression is enforced in exactly
// one place.
type Service struct {
	store repository.Store
	hub   *ws.Hub
	log   *zap.Logger
}

func NewService(store repository.Store, hub *ws.Hub, logger *zap.Logger) *Service {
	return &Service{store: store, hub: hub, log: logger}
}

// Create persists a notification and pushes the sender-enriched copy to
// the recipient's active connection. Returns nil when recipient and sender
// are the same user: nothing is persisted and nothing is pushed.
func (s *Service) Create(ctx context.Context, recipientID, senderID, notificationType, message, entityID, entityType string) (*model.Notification, error) {
	if recipientID == senderID {
		return nil, nil
	}
	if !domain.IsValidNotificationType(notificationType) {
		return nil, domain.ErrInvalidNotificationType
	}

	created, err := s.store.CreateNotification(ctx, model.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notificationType,
		Message:     message,
		EntityID:    entityID,
		EntityType:  entityType,
	})
	if err != nil {
		s.log.Error("store create notification failed",
			zap.String("recipient_id", recipientID),
			zap.String("type", notificationType),
			zap.Error(err),
		)
		return nil, err
	}

	s.enrichSender(ctx, &created)

	// Follows go out under their own event name; deployed clients listen
	// for both.
	if notificationType == domain.NotificationTypeFollow {
		s.hub.SendToUser(recipientID, ws.FollowNotificationEvent(created))
	} else {
		s.hub.SendToUser(recipientID, ws.NotificationEvent(created))
	}
	return &created, nil
}

func (s *Service) List(ctx context.Context, recipientID string, limit int) ([]model.Notification, error) {
	records, err := s.store.ListNotifications(ctx, recipientID, limit)
	if err != nil {
		s.log.Error("store list notifications failed", zap.String("recipient_id", recipientID), zap.Error(err))
		return nil, err
	}
	for i := range records {
		s.enrichSender(ctx, &records[i])
	}
	return records, nil
}

func (s *Service) MarkRead(ctx context.Context, id, recipientID string) (model.Notification, error) {
	notification, err := s.store.MarkNotificationRead(ctx, id, recipientID)
	if err != nil {
		return model.Notification{}, err
	}
	s.enrichSender(ctx, &notification)
	return notification, nil
}

func (s *Service) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.store.MarkAllNotificationsRead(ctx, recipientID)
}

func (s *Service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.store.CountUnreadNotifications(ctx, recipientID)
}

func (s *Service) enrichSender(ctx context.Context, notification *model.Notification) {
	sender, err := s.store.GetUser(ctx, notification.SenderID)
	if err != nil {
		s.log.Warn("sender lookup failed", zap.String("sender_id", notification.SenderID), zap.Error(err))
		return
	}
	author := sender.AsAuthor()
	notification.Sender = &author
}
