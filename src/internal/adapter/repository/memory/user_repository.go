package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/google/uuid"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.LoginID]; exists {
		return domain.User{}, commons.ErrDuplicateRecord
	}

	user.UID = uuid.NewString()
	user.CreatedAt = time.Now()
	r.users[user.LoginID] = user
	return user, nil
}

func (r *UserRepository) GetByLoginID(_ context.Context, loginID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[loginID]
	if !exists {
		return domain.User{}, commons.ErrRecordNotFound
	}
	return user, nil
}
