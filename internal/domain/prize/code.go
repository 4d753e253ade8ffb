package prize

//go:generate mockgen -source=code.go -destination=../../../tests/mock/domain/code_mock.go -package=domainmock

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"loyalty-ledger/internal/pkg/errs"
)

const (
	codeMin = 10000
	codeMax = 99999
)

// ErrInvalidCode is returned for anything other than five digits.
var (
	ErrInvalidCode = errs.New("prize code must be exactly 5 digits")
	codeRegex      = regexp.MustCompile(`^\d{5}$`)
	codeSpan       = big.NewInt(codeMax - codeMin + 1)
)

// Code identifies an active prize and, after redemption, its history row.
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

func ReconstructCode(s string) Code { return Code{value: s} }

func (c Code) String() string { return c.value }
func (c Code) IsZero() bool   { return c.value == "" }

// CodeGenerator draws candidate prize codes. Uniqueness is enforced by the
// code registry, not by the generator.
type CodeGenerator interface {
	Generate() (Code, error)
}

// RandomCodeGenerator draws uniformly from 10000..99999.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return Code{}, errs.Wrap(err, "failed to draw prize code")
	}
	return Code{value: big.NewInt(0).Add(n, big.NewInt(codeMin)).String()}, nil
}
