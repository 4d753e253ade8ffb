package request

import (
	"loyalty-ledger/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RegisterPurchaseRequest struct {
	CustomerCode string `json:"customer_code" binding:"required,len=5,numeric"`
	// Amount accepts a JSON number or a decimal string such as "49.90".
	Amount decimal.Decimal `json:"amount"`
}

func (r *RegisterPurchaseRequest) ToInput(store string) commands.RegisterPurchaseInput {
	return commands.RegisterPurchaseInput{
		CustomerCode: r.CustomerCode,
		Amount:       r.Amount,
		Store:        store,
	}
}
