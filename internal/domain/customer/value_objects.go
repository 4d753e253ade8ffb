package customer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	codeDigits    = 5
	maxCodeValue  = 99999
	maxNameLength = 120
	maxSexLength  = 20
)

// Validation errors returned by the constructors below. ErrSuspiciousSubmitter
// rejects sign-ups that filled the hidden form field.
var (
	ErrInvalidCode         = errs.New("customer code must be exactly 5 digits")
	ErrCodeSpaceExhausted  = errs.New("customer code sequence exhausted")
	ErrInvalidName         = errs.New("invalid customer name")
	ErrInvalidPhone        = errs.New("phone must match 'NN NNNNN-NNNN'")
	ErrInvalidEmail        = errs.New("invalid email format")
	ErrInvalidBirthDate    = errs.New("invalid birth date")
	ErrInvalidSex          = errs.New("invalid sex")
	ErrInvalidPostalCode   = errs.New("invalid postal code")
	ErrInvalidSearchTerm   = errs.New("search term must not be empty")
	ErrSuspiciousSubmitter = errs.New("suspicious submission")
)

var (
	codeRegex       = regexp.MustCompile(`^\d{5}$`)
	phoneRegex      = regexp.MustCompile(`^\d{2} \d{5}-\d{4}$`)
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	postalCodeRegex = regexp.MustCompile(`^\d{5}-?\d{3}$`)

	titleCaser = cases.Title(language.BrazilianPortuguese)
)

// Code is the public 5-digit, zero-padded customer identifier.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

// CodeFromSequence formats a value drawn from customer_code_seq.
func CodeFromSequence(n int64) (Code, error) {
	if n < 1 || n > maxCodeValue {
		return Code{}, ErrCodeSpaceExhausted
	}
	return Code{value: fmt.Sprintf("%0*d", codeDigits, n)}, nil
}

func ReconstructCode(s string) Code { return Code{value: s} }

func (c Code) String() string { return c.value }
func (c Code) IsZero() bool   { return c.value == "" }

// Name is the trimmed, title-cased display name.
type Name struct {
	value string
}

// NewName collapses inner whitespace and title-cases the name.
func NewName(s string) (Name, error) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || len(s) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: titleCaser.String(s)}, nil
}

func (n Name) String() string { return n.value }

// Phone is a Brazilian mobile number in 'NN NNNNN-NNNN' form.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Email is optional; the zero value means "no address on file".
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

// PostalCode is a CEP, with or without the hyphen.
type PostalCode struct {
	value string
}

func NewPostalCode(s string) (PostalCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PostalCode{}, nil
	}
	if !postalCodeRegex.MatchString(s) {
		return PostalCode{}, ErrInvalidPostalCode
	}
	return PostalCode{value: s}, nil
}

func (p PostalCode) String() string { return p.value }

// newBirthDate accepts the zero time as "not informed".
func newBirthDate(t time.Time, today time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, nil
	}
	if t.After(today) {
		return time.Time{}, ErrInvalidBirthDate
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, today.Location()), nil
}

func newSex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxSexLength {
		return "", ErrInvalidSex
	}
	return s, nil
}

// SearchTerm is a free-text lookup over name, phone, email or code.
type SearchTerm struct {
	value string
}

func NewSearchTerm(s string) (SearchTerm, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SearchTerm{}, ErrInvalidSearchTerm
	}
	return SearchTerm{value: s}, nil
}

func (t SearchTerm) String() string { return t.value }
