package httpdto

import (
	"time"

	"auth-service/internal/domain/account"
)

// AccountDTO represents an account in API responses. There is no field for
// the password hash, so it cannot leak through serialization.
type AccountDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FromAccount converts a domain account to AccountDTO
func FromAccount(a account.Account) AccountDTO {
	return AccountDTO{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
