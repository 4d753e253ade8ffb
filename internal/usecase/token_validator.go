package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"loyalty-ledger/internal/pkg/jwt"
)

// StoreIdentity is what a valid session token says about its bearer.
type StoreIdentity struct {
	Identifier string
	Name       string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*StoreIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*StoreIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return &StoreIdentity{
		Identifier: claims.Subject,
		Name:       claims.StoreName,
	}, nil
}
