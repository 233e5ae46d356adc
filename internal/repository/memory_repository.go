package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"auth-service/internal/domain/account"
	auth_errors "auth-service/pkg/errors"
)

// MemoryAccountRepository keeps accounts in process memory. It is the
// placeholder store this service ships with; deployments wanting durability
// inject their own AccountRepository instead.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []account.Account
	byEmail  map[string]int
	byID     map[uuid.UUID]int
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		byEmail: make(map[string]int),
		byID:    make(map[uuid.UUID]int),
	}
}

// Create appends the account. The email check and the append happen under
// one write lock, so duplicate registrations racing each other produce one
// winner and one ErrAlreadyExists.
func (r *MemoryAccountRepository) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email]; exists {
		return auth_errors.ErrAlreadyExists
	}

	idx := len(r.accounts)
	r.accounts = append(r.accounts, *a)
	r.byEmail[a.Email] = idx
	r.byID[a.ID] = idx
	return nil
}

func (r *MemoryAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return account.Account{}, auth_errors.ErrNotFound
	}
	return r.accounts[idx], nil
}

func (r *MemoryAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return account.Account{}, auth_errors.ErrNotFound
	}
	return r.accounts[idx], nil
}
