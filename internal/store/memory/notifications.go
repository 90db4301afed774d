package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socialstream/internal/domain"
	"socialstream/internal/model"
)

func (s *Store) CreateNotification(_ context.Context, notification model.Notification) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	s.notifications = append(s.notifications, notification)
	return notification, nil
}

func (s *Store) ListNotifications(_ context.Context, recipientID string, limit int) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		record := s.notifications[i]
		if record.RecipientID != recipientID {
			continue
		}
		result = append(result, record)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id, recipientID string) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, record := range s.notifications {
		if record.ID == id && record.RecipientID == recipientID {
			s.notifications[i].Read = true
			return s.notifications[i], nil
		}
	}
	return model.Notification{}, domain.ErrNotificationNotFound
}

func (s *Store) MarkAllNotificationsRead(_ context.Context, recipientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, record := range s.notifications {
		if record.RecipientID == recipientID {
			s.notifications[i].Read = true
		}
	}
	return nil
}

func (s *Store) CountUnreadNotifications(_ context.Context, recipientID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, record := range s.notifications {
		if record.RecipientID == recipientID && !record.Read {
			count++
		}
	}
	return count, nil
}
