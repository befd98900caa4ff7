package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// Credentials carries a login attempt.
type Credentials struct {
	Username string
	Password string
}

// CredentialProvider validates login attempts and maps users to roles.
type CredentialProvider interface {
	// ValidateCredentials returns nil when the credentials are correct.
	ValidateCredentials(ctx context.Context, creds Credentials) error
	// IdentifyUser returns the role for a known username.
	IdentifyUser(ctx context.Context, username string) (string, error)
}

// EnvProvider validates credentials against a single admin account supplied
// at construction, typically from the ADMIN_USER / ADMIN_USER_PASSWORD
// environment variables. Comparisons are constant-time.
type EnvProvider struct {
	AdminUser     string
	AdminPassword string
}

// ValidateCredentials checks the login against the configured admin account.
func (p *EnvProvider) ValidateCredentials(_ context.Context, creds Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return errors.New("credentials must not be empty")
	}

	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(p.AdminUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.AdminPassword)) == 1
	if !userMatch || !passMatch {
		return errors.New("invalid credentials")
	}
	return nil
}

// IdentifyUser returns RoleAdmin for the configured admin account.
func (p *EnvProvider) IdentifyUser(_ context.Context, username string) (string, error) {
	if username == "" {
		return "", errors.New("username must not be empty")
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(p.AdminUser)) == 1 {
		return RoleAdmin, nil
	}
	return "", errors.New("user not found")
}

var _ CredentialProvider = (*EnvProvider)(nil)
