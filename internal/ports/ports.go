package ports

// Package ports defines interfaces (hexagonal ports) for the identity
// provider. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"net/url"
	"time"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	"github.com/nameid/nameid/internal/domain/identity"
)

// NameRegistry resolves a name against the external registry daemon.
// Resolve returns a NotFound AppError when the name has no record and an
// Unavailable AppError when the daemon cannot be reached; it is a single
// synchronous round trip with no retries at this layer.
type NameRegistry interface {
	Resolve(ctx context.Context, name string) (identity.Record, error)
}

// SessionStore persists and retrieves sessions keyed by their opaque token.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, token string) (domainauth.Session, error)
	Delete(ctx context.Context, token string) error
}

// SignatureVerifier checks a login signature against the record owning the
// claimed name. The signed payload and scheme are the registry's identity
// convention; callers only learn pass/fail.
type SignatureVerifier interface {
	Verify(record identity.Record, message, signature string) error
}

// ProtocolEngine wraps the federated-auth wire protocol: decoding incoming
// requests and producing positive/negative assertion responses.
type ProtocolEngine interface {
	// DecodeRequest parses protocol parameters into a Request. It returns
	// (nil, nil) when the values carry no recognizable request, and a
	// Protocol AppError for a malformed one.
	DecodeRequest(values url.Values) (*domainauth.Request, error)

	// Authenticate produces the protocol-compliant positive response for a
	// confirmed trust decision, as a redirect location.
	Authenticate(req *domainauth.Request, claimedID string) (string, error)

	// Cancel produces the protocol-compliant negative response. Called with
	// a nil request it is a no-op returning an empty location.
	Cancel(req *domainauth.Request) (string, error)
}

// LoginAttempt is one row of the login audit trail.
type LoginAttempt struct {
	ID        string
	Name      string
	Succeeded bool
	Remark    string
	CreatedAt time.Time
}

// LoginAuditRepository records login attempts for operational review.
// Recording is best-effort: failures never change an authentication outcome.
type LoginAuditRepository interface {
	Record(ctx context.Context, attempt LoginAttempt) error
	ListRecent(ctx context.Context, limit int) ([]LoginAttempt, error)
}
