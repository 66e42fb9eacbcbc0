package admin

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password ChangePassword accepts.
const MinPasswordLength = 6

// Authenticator guards the single admin account.
// The password is only ever held as a bcrypt hash.
type Authenticator struct {
	mu       sync.RWMutex
	username string
	hash     []byte
	cost     int
}

// NewAuthenticator hashes password with bcrypt.DefaultCost.
func NewAuthenticator(username, password string) (*Authenticator, error) {
	return newAuthenticator(username, password, bcrypt.DefaultCost)
}

func newAuthenticator(username, password string, cost int) (*Authenticator, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: admin username is empty", ErrInvalid)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Authenticator{username: username, hash: hash, cost: cost}, nil
}

// Username returns the admin account name.
func (a *Authenticator) Username() string {
	return a.username
}

// Login checks the credentials and returns ErrUnauthorized on mismatch.
func (a *Authenticator) Login(username, password string) error {
	a.mu.RLock()
	hash := a.hash
	a.mu.RUnlock()

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if !userOK || passErr != nil {
		return ErrUnauthorized
	}
	return nil
}

// ChangePassword replaces the password after checking the current one.
func (a *Authenticator) ChangePassword(current, next, confirm string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if bcrypt.CompareHashAndPassword(a.hash, []byte(current)) != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrUnauthorized)
	}
	if next != confirm {
		return fmt.Errorf("%w: new passwords do not match", ErrInvalid)
	}
	if len(next) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalid, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	a.hash = hash
	return nil
}
