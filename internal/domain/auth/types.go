package auth

// Package auth contains domain-level types for sessions and pending
// federated-auth requests. It is pure and free of adapter concerns.

import (
	"time"

	"github.com/nameid/nameid/internal/domain/identity"
)

// ProtocolVersion identifies the federated-auth protocol generation a
// relying party speaks. Kept in string form for easy persistence.
type ProtocolVersion string

const (
	ProtocolV11 ProtocolVersion = "1.1"
	ProtocolV20 ProtocolVersion = "2.0"
)

// Request is a decoded federated-auth request from a relying party. It lives
// inside the session until trust is confirmed or the request is cancelled.
type Request struct {
	// TrustRoot is the realm the relying party asks the user to trust.
	TrustRoot string `json:"trust_root"`

	// ReturnTo is where the protocol response redirects the user agent.
	ReturnTo string `json:"return_to"`

	// ClaimedID is the identity URL the relying party asserted, if any.
	ClaimedID string `json:"claimed_id,omitempty"`

	// Version is the protocol generation of the incoming request.
	Version ProtocolVersion `json:"version"`

	// Immediate is set for checkid_immediate requests, which must not
	// interact with the user.
	Immediate bool `json:"immediate,omitempty"`
}

// Session is the server-side record persisted per browser. Token is an opaque
// identifier carried in a cookie; the store owns expiry via TTL.
type Session struct {
	Token string `json:"token"`

	// User is the logged-in identity, absent until login succeeds.
	User *identity.Record `json:"user,omitempty"`

	// PendingRequest is a decoded federated-auth request awaiting a trust
	// decision, absent otherwise.
	PendingRequest *Request `json:"pending_request,omitempty"`

	// Nonce is the last challenge nonce issued for a login form. It is valid
	// for at most one login attempt and cleared on consumption.
	Nonce string `json:"nonce,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}

// LoggedIn reports whether the session carries an authenticated user.
func (s *Session) LoggedIn() bool { return s.User != nil }

// ConsumeNonce returns the current nonce and clears it. The clear happens
// unconditionally so a nonce can never authenticate twice.
func (s *Session) ConsumeNonce() string {
	n := s.Nonce
	s.Nonce = ""
	return n
}

// ClearPendingRequest drops the pending federated-auth request, if any.
// Clearing an absent request is a no-op.
func (s *Session) ClearPendingRequest() {
	s.PendingRequest = nil
}
