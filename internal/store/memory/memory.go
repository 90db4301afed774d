package memory

import (
	"sync"

	"go.uber.org/zap"

	"socialstream/internal/model"
)

// Store is the in-memory fallback used when no MongoDB URI is configured,
// and the backend the tests run against.
type Store struct {
	mu            sync.Mutex
	comments      map[string]model.Comment
	commentOrder  []string
	notifications []model.Notification
	users         map[string]model.User
	log           *zap.Logger
}

func New(logger *zap.Logger) *Store {
	return &Store{
		comments: make(map[string]model.Comment),
		users:    make(map[string]model.User),
		log:      logger,
	}
}
