package store

import (
	"regexp"
	"strings"

	"loyalty-ledger/internal/pkg/errs"
)

var (
	ErrInvalidUsername   = errs.New("invalid username")
	ErrInvalidIdentifier = errs.New("invalid store identifier")
	ErrInvalidPassword   = errs.New("invalid password")
)

var identifierRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{1,62}$`)

// Credentials are what a store terminal presents at login.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrInvalidUsername
	}
	if password == "" {
		return Credentials{}, ErrInvalidPassword
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }

// Store is an authenticated point of sale. Identifier is the opaque value
// stamped on purchases and redemptions.
type Store struct {
	username     string
	identifier   string
	name         string
	passwordHash string
	active       bool
}

func NewStore(username, identifier, name, passwordHash string) (*Store, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	identifier = strings.TrimSpace(identifier)
	if !identifierRegex.MatchString(identifier) {
		return nil, ErrInvalidIdentifier
	}
	if passwordHash == "" {
		return nil, ErrInvalidPassword
	}
	return &Store{
		username:     username,
		identifier:   identifier,
		name:         strings.TrimSpace(name),
		passwordHash: passwordHash,
		active:       true,
	}, nil
}

func ReconstructStore(username, identifier, name, passwordHash string, active bool) *Store {
	return &Store{
		username:     username,
		identifier:   identifier,
		name:         name,
		passwordHash: passwordHash,
		active:       active,
	}
}

func (s *Store) Username() string     { return s.username }
func (s *Store) Identifier() string   { return s.identifier }
func (s *Store) Name() string         { return s.name }
func (s *Store) PasswordHash() string { return s.passwordHash }
func (s *Store) IsActive() bool       { return s.active }
