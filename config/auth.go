package config

import (
	"fmt"
	"strings"
	"time"
)

// VerifyMode selects the signature verification backend.
type VerifyMode string

const (
	// VerifyModeNamecoin verifies signed-message signatures against the
	// registry owner address.
	VerifyModeNamecoin VerifyMode = "namecoin"
	// VerifyModeMock accepts a fixed dev signature (for development only).
	VerifyModeMock VerifyMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for VerifyMode.
func (v *VerifyMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch s {
	case "namecoin", "mock":
		*v = VerifyMode(s)
		return nil
	default:
		return fmt.Errorf("invalid VerifyMode: %q (valid options: namecoin, mock)", s)
	}
}

// AuthConfig groups authentication-related configuration.
type AuthConfig struct {
	// Mode determines which signature verifier to use.
	Mode VerifyMode `env:"VERIFY_MODE" envDefault:"namecoin"`

	// SessionTTL bounds how long an idle session record lives in the store.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// NonceLength is the length of challenge nonces in URL-safe characters.
	NonceLength int `env:"NONCE_LENGTH" envDefault:"32"`

	// AssocSecret keys the HMAC signature over protocol assertions.
	// Required outside development.
	AssocSecret string `env:"ASSOC_SECRET"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	const minNonceLength = 16
	if a.NonceLength < minNonceLength {
		a.NonceLength = minNonceLength
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}
