package response

import (
	"time"

	"loyalty-ledger/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken     string    `json:"access_token"`
	ExpiresAt       time.Time `json:"expires_at"`
	StoreIdentifier string    `json:"store_identifier"`
	StoreName       string    `json:"store_name"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken:     r.Token,
		ExpiresAt:       r.ExpiresAt,
		StoreIdentifier: r.StoreIdentifier,
		StoreName:       r.StoreName,
	}
}
