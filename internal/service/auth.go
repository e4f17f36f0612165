package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Resolver *ResolverService
	Verifier ports.SignatureVerifier
	Audit    ports.LoginAuditRepository // optional
	Logger   *slog.Logger               // optional

	// BaseURL is the provider's public base URL, part of every challenge.
	BaseURL string
}

// AuthService verifies login signatures and binds identities to sessions.
type AuthService struct {
	resolver *ResolverService
	verifier ports.SignatureVerifier
	audit    ports.LoginAuditRepository
	logger   *slog.Logger
	baseURL  string
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		resolver: opts.Resolver,
		verifier: opts.Verifier,
		audit:    opts.Audit,
		logger:   logger,
		baseURL:  opts.BaseURL,
	}
}

// LoginInput groups the fields of a login attempt.
type LoginInput struct {
	Name      string
	Signature string
	// Nonce is the challenge nonce echoed back by the login form.
	Nonce string
}

// Challenge is the exact message the user must sign for a login attempt.
// Binding the provider URL and the nonce into the message pins a signature
// to this provider and this single attempt.
func (s *AuthService) Challenge(name, nonce string) string {
	return fmt.Sprintf("%s?login=%s&nonce=%s", s.baseURL, url.QueryEscape(name), nonce)
}

// Login authenticates a signature for input.Name and, on success, binds the
// resolved identity to the session. The session nonce is consumed exactly
// once, before any verification and regardless of outcome; the user binding
// is the only other session mutation and happens on the success path alone.
func (s *AuthService) Login(ctx context.Context, sess *domainauth.Session, input LoginInput) error {
	issued := sess.ConsumeNonce()
	err := s.login(ctx, sess, issued, input)
	s.recordAttempt(ctx, input.Name, err)
	return err
}

func (s *AuthService) login(ctx context.Context, sess *domainauth.Session, issued string, input LoginInput) error {
	if err := s.verifyAttempt(issued, input); err != nil {
		return err
	}

	record, err := s.resolver.Resolve(ctx, input.Name)
	if err != nil {
		// An unregistered name is a login failure, not a distinct page.
		if apperrors.IsNotFound(err) {
			return apperrors.Wrap(err, apperrors.ErrCodeAuthentication, "identity is not registered")
		}
		return err
	}

	if err := s.verifier.Verify(record, s.Challenge(input.Name, issued), input.Signature); err != nil {
		return err
	}

	sess.User = &record
	return nil
}

// verifyAttempt validates attempt fields and the nonce before touching the
// registry or the verifier.
func (s *AuthService) verifyAttempt(issued string, input LoginInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.ValidationField("identity", "identity is required")
	}
	if input.Signature == "" {
		return apperrors.ValidationField("signature", "signature is required")
	}
	if issued == "" {
		return apperrors.Authentication("no login challenge was issued for this session")
	}
	if input.Nonce != issued {
		return apperrors.Authentication("login challenge does not match the issued nonce")
	}
	return nil
}

// Logout clears the session's user binding.
func (s *AuthService) Logout(sess *domainauth.Session) {
	sess.User = nil
}

// recordAttempt writes one audit row. Auditing is best-effort and never
// changes the authentication outcome.
func (s *AuthService) recordAttempt(ctx context.Context, name string, outcome error) {
	if s.audit == nil {
		return
	}
	attempt := ports.LoginAttempt{
		ID:        uuid.NewString(),
		Name:      name,
		Succeeded: outcome == nil,
		CreatedAt: time.Now().UTC(),
	}
	if outcome != nil {
		attempt.Remark = outcome.Error()
	}
	if err := s.audit.Record(ctx, attempt); err != nil {
		s.logger.WarnContext(ctx, "record login attempt failed", "name", name, "error", err)
	}
}
