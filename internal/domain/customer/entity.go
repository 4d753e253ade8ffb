package customer

import (
	"time"

	"loyalty-ledger/internal/pkg/errs"
)

// Profile is the editable part of a customer record.
type Profile struct {
	name       Name
	phone      Phone
	email      Email
	birthDate  time.Time
	sex        string
	postalCode PostalCode
}

type ProfileInput struct {
	Name       string
	Phone      string
	Email      string
	BirthDate  time.Time
	Sex        string
	PostalCode string
}

// NewProfile validates every field and reports the first failure marked as
// a validation error.
func NewProfile(in ProfileInput, today time.Time) (Profile, error) {
	name, err := NewName(in.Name)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}
	phone, err := NewPhone(in.Phone)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}
	email, err := NewEmail(in.Email)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}
	birthDate, err := newBirthDate(in.BirthDate, today)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}
	sex, err := newSex(in.Sex)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}
	postalCode, err := NewPostalCode(in.PostalCode)
	if err != nil {
		return Profile{}, errs.Mark(err, errs.ErrValidation)
	}

	return Profile{
		name:       name,
		phone:      phone,
		email:      email,
		birthDate:  birthDate,
		sex:        sex,
		postalCode: postalCode,
	}, nil
}

// ReconstructProfile rebuilds a stored profile without re-validating it.
func ReconstructProfile(name, phone, email string, birthDate time.Time, sex, postalCode string) Profile {
	return Profile{
		name:       Name{value: name},
		phone:      Phone{value: phone},
		email:      Email{value: email},
		birthDate:  birthDate,
		sex:        sex,
		postalCode: PostalCode{value: postalCode},
	}
}

func (p Profile) Name() Name             { return p.name }
func (p Profile) Phone() Phone           { return p.phone }
func (p Profile) Email() Email           { return p.email }
func (p Profile) BirthDate() time.Time   { return p.birthDate }
func (p Profile) Sex() string            { return p.sex }
func (p Profile) PostalCode() PostalCode { return p.postalCode }

// Customer is a newly registered loyalty member. Balances start at zero and
// are only ever changed by the ledger.
type Customer struct {
	code        Code
	profile     Profile
	originStore string
	createdAt   time.Time
}

func NewCustomer(code Code, profile Profile, originStore string, now time.Time) *Customer {
	return &Customer{
		code:        code,
		profile:     profile,
		originStore: originStore,
		createdAt:   now,
	}
}

func ReconstructCustomer(code Code, profile Profile, originStore string, createdAt time.Time) *Customer {
	return NewCustomer(code, profile, originStore, createdAt)
}

func (c *Customer) Code() Code           { return c.code }
func (c *Customer) Profile() Profile     { return c.profile }
func (c *Customer) OriginStore() string  { return c.originStore }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// IsBirthday compares month and day only; Feb 29 birthdays are celebrated on
// Feb 28 in non-leap years.
func IsBirthday(birthDate, today time.Time) bool {
	if birthDate.IsZero() {
		return false
	}
	bm, bd := birthDate.Month(), birthDate.Day()
	tm, td := today.Month(), today.Day()
	if bm == time.February && bd == 29 && !isLeap(today.Year()) {
		return tm == time.February && td == 28
	}
	return bm == tm && bd == td
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
