package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"chicken-road-backend/internal/models"
)

// MemoryStore keeps user records in process memory. It satisfies the same
// contract as RedisStore and is the operator-chosen stand-in when no durable
// backend is available; handler tests run against it for the same reason.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
	locks sync.Map // userID -> *sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
	}
}

// userLock serializes mutations per userId without blocking other users.
func (s *MemoryStore) userLock(userID string) *sync.Mutex {
	l, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return l.(*sync.Mutex)
}

func (s *MemoryStore) OpenOrCreate(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		userID = uuid.New().String()
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	existing, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return &existing, nil
	}

	user := models.NewUser(userID)
	s.mu.Lock()
	s.users[userID] = *user
	s.mu.Unlock()

	return user, nil
}

func (s *MemoryStore) Find(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	user, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID string) (bool, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	_, ok := s.users[userID]
	delete(s.users, userID)
	s.mu.Unlock()

	return ok, nil
}

func (s *MemoryStore) AdjustBalance(ctx context.Context, userID string, delta float64) (*models.User, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	user, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}

	user.Balance += delta
	user.UpdatedAt = time.Now()

	s.mu.Lock()
	s.users[userID] = user
	s.mu.Unlock()

	return &user, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
