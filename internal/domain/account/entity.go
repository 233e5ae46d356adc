package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents one registered principal. Accounts are created through
// registration only and are never mutated or deleted afterwards.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
