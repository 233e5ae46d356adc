package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"auth-service/config"
	"auth-service/internal/domain/account"
	"auth-service/internal/repository"
	auth_errors "auth-service/pkg/errors"
)

// AccountService owns the account directory: registration, credential
// checks, and lookups. It never hands a password hash back to callers.
type AccountService struct {
	accountRepo repository.AccountRepository
	bcryptCost  int
}

func NewAccountService(accountRepo repository.AccountRepository, cfg *config.Config) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		bcryptCost:  cfg.BcryptCost,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (account.Account, error) {
	if err := validateRegister(in); err != nil {
		return account.Account{}, err
	}

	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return account.Account{}, err
	}

	newAccount := &account.Account{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.accountRepo.Create(ctx, newAccount); err != nil {
		return account.Account{}, err
	}

	incrementAccountsRegistered()
	return stripHash(*newAccount), nil
}

// Authenticate verifies an email/password pair. Unknown email and wrong
// password collapse into the same ErrInvalidCredentials so a caller cannot
// probe which addresses are registered.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (account.Account, error) {
	if email == "" || password == "" {
		return account.Account{}, auth_errors.ErrInvalidInput
	}

	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth_errors.ErrNotFound) {
			incrementLoginsFailed()
			return account.Account{}, auth_errors.ErrInvalidCredentials
		}
		return account.Account{}, err
	}

	if err := comparePassword(a.PasswordHash, password); err != nil {
		incrementLoginsFailed()
		return account.Account{}, auth_errors.ErrInvalidCredentials
	}

	incrementLoginsSucceeded()
	return stripHash(a), nil
}

func (s *AccountService) FindByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	a, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return account.Account{}, err
	}
	return stripHash(a), nil
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, auth_errors.ErrInvalidInput), errors.Is(err, auth_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, auth_errors.ErrInvalidCredentials), errors.Is(err, auth_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, auth_errors.ErrTokenExpired), errors.Is(err, auth_errors.ErrTokenInvalid):
		return 401
	case errors.Is(err, auth_errors.ErrNotFound):
		return 404
	default:
		return 500
	}
}

type ctxKey string

var accountIDKey ctxKey = "account_id"
var accountEmailKey ctxKey = "account_email"

func WithAccountContext(ctx context.Context, accountID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	ctx = context.WithValue(ctx, accountEmailKey, email)
	return ctx
}

func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(accountIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	accountID, ok := value.(uuid.UUID)
	return accountID, ok
}

func AccountEmailFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(accountEmailKey)
	if value == nil {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

func validateRegister(in RegisterInput) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return auth_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func stripHash(a account.Account) account.Account {
	a.PasswordHash = ""
	return a
}
