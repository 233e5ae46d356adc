package repository

import (
	"context"

	"github.com/google/uuid"

	"auth-service/internal/domain/account"
)

// AccountRepository is the storage abstraction behind the account directory.
// Implementations must treat Create's uniqueness check and insert as a
// single atomic unit: two concurrent Creates with the same email result in
// exactly one success.
type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
}
