//go:build unit || e2e

package builder

import (
	reqdto "loyalty-ledger/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "loja01",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
