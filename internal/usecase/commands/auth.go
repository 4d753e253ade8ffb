package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"time"

	"loyalty-ledger/internal/domain/store"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/pkg/jwt"
	"loyalty-ledger/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrStoreInactive      = errs.New("store inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token           string
	ExpiresAt       time.Time
	StoreIdentifier string
	StoreName       string
}

type StoreReader interface {
	FindByUsername(ctx context.Context, username string) (*store.Store, error)
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	stores     StoreReader
	jwtService *jwt.Service
}

func NewAuthCommands(stores StoreReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		stores:     stores,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := store.NewCredentials(in.Username, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	s, err := a.stores.FindByUsername(ctx, credentials.Username())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// Same error as a password mismatch to prevent username enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(s.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.IsActive() {
		return nil, ErrStoreInactive
	}

	token, err := a.jwtService.GenerateToken(s.Identifier(), s.Name())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:           token,
		ExpiresAt:       time.Now().Add(a.jwtService.TokenDuration()),
		StoreIdentifier: s.Identifier(),
		StoreName:       s.Name(),
	}, nil
}
