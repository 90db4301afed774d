package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"socialstream/internal/domain"
	"socialstream/internal/model"
	"socialstream/internal/repository"
	"socialstream/internal/service/notify"
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

type ackMock struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *ackMock) Ack(_ uint64, _ bool) error {
	a.acked++
	return nil
}

func (a *ackMock) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *ackMock) Reject(_ uint64, _ bool) error {
	return nil
}

func newConsumer(store repository.Store) *Consumer {
	svc := notify.NewService(store, ws.NewHub(zap.NewNop()), zap.NewNop())
	return &Consumer{svc: svc, logger: zap.NewNop()}
}

func TestConsumerHandleMessage(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		store := memory.New(zap.NewNop())
		consumer := newConsumer(store)
		ack := &ackMock{}

		msg := amqp.Delivery{
			Body:         []byte("{bad json"),
			Acknowledger: ack,
		}

		err := consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 1, ack.acked)
		require.Equal(t, 0, ack.nacked)
	})

	t.Run("missing fields", func(t *testing.T) {
		store := memory.New(zap.NewNop())
		consumer := newConsumer(store)
		ack := &ackMock{}

		msg := amqp.Delivery{
			Body:         []byte(`{"recipientId":"alice"}`),
			Acknowledger: ack,
		}

		err := consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 1, ack.acked)
		require.Equal(t, 0, ack.nacked)
		records, err := store.ListNotifications(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("invalid type", func(t *testing.T) {
		store := memory.New(zap.NewNop())
		consumer := newConsumer(store)
		ack := &ackMock{}

		msg := amqp.Delivery{
			Body:         []byte(`{"recipientId":"alice","senderId":"bob","type":"bad","message":"m"}`),
			Acknowledger: ack,
		}

		err := consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 1, ack.acked)
		require.Equal(t, 0, ack.nacked)
	})

	t.Run("self notification -> ack without persist", func(t *testing.T) {
		store := memory.New(zap.NewNop())
		consumer := newConsumer(store)
		ack := &ackMock{}

		msg := amqp.Delivery{
			Body:         []byte(`{"recipientId":"alice","senderId":"alice","type":"like","message":"m"}`),
			Acknowledger: ack,
		}

		err := consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 1, ack.acked)
		records, err := store.ListNotifications(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("store error -> nack", func(t *testing.T) {
		storeErr := errors.New("store failed")
		consumer := newConsumer(&failingStore{Store: memory.New(zap.NewNop()), err: storeErr})
		ack := &ackMock{}

		msg := amqp.Delivery{
			Body:         []byte(`{"recipientId":"alice","senderId":"bob","type":"like","message":"m"}`),
			Acknowledger: ack,
		}

		err := consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 0, ack.acked)
		require.Equal(t, 1, ack.nacked)
		require.True(t, ack.requeue)
	})

	t.Run("success -> ack", func(t *testing.T) {
		store := memory.New(zap.NewNop())
		_, err := store.CreateUser(context.Background(), model.User{ID: "bob", Username: "bob"})
		require.NoError(t, err)
		consumer := newConsumer(store)
		ack := &ackMock{}

		payload, err := json.Marshal(map[string]string{
			"recipientId": "alice",
			"senderId":    "bob",
			"type":        domain.NotificationTypeLike,
			"message":     "bob liked your comment",
			"entityId":    "c1",
			"entityType":  domain.EntityTypeComment,
		})
		require.NoError(t, err)

		msg := amqp.Delivery{
			Body:         payload,
			Acknowledger: ack,
		}

		err = consumer.handleMessage(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, 1, ack.acked)
		require.Equal(t, 0, ack.nacked)

		records, err := store.ListNotifications(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, domain.NotificationTypeLike, records[0].Type)
	})
}
