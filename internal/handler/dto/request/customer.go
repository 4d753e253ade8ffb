package request

import (
	"time"

	"loyalty-ledger/internal/domain/customer"
	"loyalty-ledger/internal/usecase/commands"
)

type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email,max=254"`
	BirthDate  string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Sex        string `json:"sex" binding:"omitempty,max=20"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=9"`
}

// PublicRegisterRequest is the self-registration form. Website is a honeypot
// left empty by people and filled in by bots.
type PublicRegisterRequest struct {
	CustomerRequest
	Website string `json:"website"`
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=120"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,max=254"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Sex        *string `json:"sex" binding:"omitempty,max=20"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=9"`
}

func (r *CustomerRequest) ToInput(originStore string) commands.RegisterCustomerInput {
	return commands.RegisterCustomerInput{
		Profile: customer.ProfileInput{
			Name:       r.Name,
			Phone:      r.Phone,
			Email:      r.Email,
			BirthDate:  parseDate(r.BirthDate),
			Sex:        r.Sex,
			PostalCode: r.PostalCode,
		},
		OriginStore: originStore,
	}
}

func (r *PublicRegisterRequest) ToInput(originStore string) commands.RegisterCustomerInput {
	in := r.CustomerRequest.ToInput(originStore)
	in.Honeypot = r.Website
	return in
}

// ToInput keeps nil for omitted fields. An empty birth_date clears the date.
func (r *UpdateCustomerRequest) ToInput() commands.UpdateCustomerInput {
	in := commands.UpdateCustomerInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Sex:        r.Sex,
		PostalCode: r.PostalCode,
	}
	if r.BirthDate != nil {
		d := parseDate(*r.BirthDate)
		in.BirthDate = &d
	}
	return in
}

// parseDate expects input already checked by the datetime binding rule.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return d
}
