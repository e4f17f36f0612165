package devverify

// Package devverify provides a config-driven SignatureVerifier for local
// development, so the provider runs without a registry wallet.

import (
	"crypto/hmac"

	"github.com/nameid/nameid/internal/domain/identity"
	apperrors "github.com/nameid/nameid/internal/errors"
)

// Verifier accepts the deterministic dev signature "dev:<name>" for any
// record. Never wire it outside development mode.
type Verifier struct{}

// NewVerifier constructs the dev verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify accepts exactly the dev signature for the record's name.
func (v *Verifier) Verify(record identity.Record, _ string, signature string) error {
	if hmac.Equal([]byte(signature), []byte("dev:"+record.Name)) {
		return nil
	}
	return apperrors.Authentication("dev signature mismatch")
}
