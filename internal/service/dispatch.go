package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	"github.com/nameid/nameid/internal/domain/page"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/ports"
)

// DispatchServiceOptions groups dependencies for DispatchService.
type DispatchServiceOptions struct {
	Resolver *ResolverService
	Auth     *AuthService
	Engine   ports.ProtocolEngine
	Logger   *slog.Logger // optional

	// BaseURL is the provider's public base URL, used for discovery
	// locations and identity URLs.
	BaseURL string

	// NonceLength is the length of issued challenge nonces.
	NonceLength int
}

// DispatchService classifies each request into exactly one intent and drives
// the authentication and trust flow. Intents are evaluated in fixed priority
// order (discovery document, identity page, action, view, default) and the
// first match wins; there is no status to override afterwards.
type DispatchService struct {
	resolver    *ResolverService
	auth        *AuthService
	engine      ports.ProtocolEngine
	logger      *slog.Logger
	baseURL     string
	nonceLength int
}

// NewDispatchService constructs a DispatchService.
func NewDispatchService(opts DispatchServiceOptions) *DispatchService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	nonceLength := opts.NonceLength
	if nonceLength <= 0 {
		nonceLength = 32
	}
	return &DispatchService{
		resolver:    opts.Resolver,
		auth:        opts.Auth,
		engine:      opts.Engine,
		logger:      logger,
		baseURL:     opts.BaseURL,
		nonceLength: nonceLength,
	}
}

// Dispatch produces the single terminal result for a request. The session is
// mutated in memory only; the caller persists it after a successful dispatch.
// A non-nil error means the request is fatal (registry unreachable) and no
// page beyond the error page should be rendered.
func (s *DispatchService) Dispatch(ctx context.Context, params page.Params, sess *domainauth.Session) (page.Result, error) {
	res, err := s.resolveIntent(ctx, params, sess)
	if err != nil {
		return page.Result{}, err
	}
	return s.refine(res, sess)
}

// resolveIntent walks the intent priority order, short-circuiting on the
// first one that claims the request. Messages accumulate across intents that
// inspect and decline the request.
func (s *DispatchService) resolveIntent(ctx context.Context, params page.Params, sess *domainauth.Session) (page.Result, error) {
	var msgs page.Messages

	if res, ok := s.tryDiscovery(params); ok {
		res.Messages = msgs
		return res, nil
	}

	res, ok, err := s.tryIdentityPage(ctx, params)
	if err != nil {
		return page.Result{}, err
	}
	if ok {
		res.Messages = msgs
		return res, nil
	}

	res, ok, err = s.tryAction(ctx, params, sess, &msgs)
	if err != nil {
		return page.Result{}, err
	}
	if ok {
		res.Messages = msgs
		return res, nil
	}

	if res, ok := s.tryView(params, sess, &msgs); ok {
		res.Messages = msgs
		return res, nil
	}

	// Nothing matched: default page with a pointer at the general
	// discovery document.
	return page.Result{
		Status:       page.StatusDefault,
		DiscoveryURL: s.xrdsURL(page.XRDSGeneral, ""),
		Messages:     msgs,
	}, nil
}

// tryDiscovery claims requests for a discovery document. Discovery responses
// end processing immediately: no headers, no page body, no messages beyond
// those already collected.
func (s *DispatchService) tryDiscovery(params page.Params) (page.Result, bool) {
	switch params.XRDS {
	case "general":
		return page.Result{Status: page.StatusXRDSGeneral, XRDS: page.XRDSGeneral}, true
	case "identity":
		return page.Result{Status: page.StatusXRDSIdentity, XRDS: page.XRDSIdentity}, true
	default:
		// Unrecognized document kinds fall through to the other intents.
		return page.Result{}, false
	}
}

// tryIdentityPage claims requests naming an identity. Registry outages are
// fatal; a missing name resolves to its own page, not an error.
func (s *DispatchService) tryIdentityPage(ctx context.Context, params page.Params) (page.Result, bool, error) {
	if params.Name == "" {
		return page.Result{}, false, nil
	}

	record, err := s.resolver.Resolve(ctx, params.Name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return page.Result{
				Status:       page.StatusIdentityNotFound,
				IdentityName: params.Name,
			}, true, nil
		}
		return page.Result{}, false, err
	}

	return page.Result{
		Status:       page.StatusIdentityPage,
		IdentityName: params.Name,
		Identity:     &record,
		DiscoveryURL: s.xrdsURL(page.XRDSIdentity, params.Name),
	}, true, nil
}

// tryAction claims user actions. An unrecognized action and a cancel with
// nothing pending both decline the request so later intents may run.
func (s *DispatchService) tryAction(ctx context.Context, params page.Params, sess *domainauth.Session, msgs *page.Messages) (page.Result, bool, error) {
	switch page.ParseAction(params.Action) {
	case page.ActionLogin:
		return s.actionLogin(ctx, params, sess, msgs)
	case page.ActionLogout:
		s.auth.Logout(sess)
		msgs.Add("You have been logged out successfully.")
		return page.Result{Status: page.StatusLoginForm}, true, nil
	case page.ActionTrust:
		res, ok := s.actionTrust(params, sess, msgs)
		return res, ok, nil
	case page.ActionNone:
		return page.Result{}, false, nil
	}
	return page.Result{}, false, nil
}

// actionLogin handles the login action: cancel control first, then the
// signature attempt. The status is tentatively the login form so every
// failure below re-shows it.
func (s *DispatchService) actionLogin(ctx context.Context, params page.Params, sess *domainauth.Session, msgs *page.Messages) (page.Result, bool, error) {
	if params.SubmitCancel && !params.SubmitLogin {
		res, ok := s.cancelPending(sess, msgs)
		return res, ok, nil
	}
	if !params.SubmitLogin || params.SubmitCancel {
		// The form always submits exactly one control; anything else is a
		// tampered request, reported instead of crashing.
		msgs.AddError("Inconsistent login submission.")
		return page.Result{Status: page.StatusLoginForm}, true, nil
	}

	err := s.auth.Login(ctx, sess, LoginInput{
		Name:      params.Identity,
		Signature: params.Signature,
		Nonce:     params.Nonce,
	})
	if err != nil {
		if apperrors.IsUnavailable(err) {
			return page.Result{}, false, err
		}
		msgs.AddError("Login failed: %s", userFacing(err))
		return page.Result{Status: page.StatusLoginForm}, true, nil
	}

	msgs.Add("You have logged in successfully.")
	return page.Result{Status: page.StatusLoggedIn}, true, nil
}

// actionTrust handles the trust decision for a pending request.
func (s *DispatchService) actionTrust(params page.Params, sess *domainauth.Session, msgs *page.Messages) (page.Result, bool) {
	if params.SubmitNoTrust && !params.SubmitTrust {
		return s.cancelPending(sess, msgs)
	}
	if !params.SubmitTrust || params.SubmitNoTrust {
		msgs.AddError("Inconsistent trust submission.")
		if sess.LoggedIn() && sess.PendingRequest != nil {
			return page.Result{
				Status:    page.StatusConfirmTrust,
				TrustRoot: sess.PendingRequest.TrustRoot,
			}, true
		}
		return page.Result{Status: page.StatusLoginForm}, true
	}

	req := sess.PendingRequest
	if req == nil {
		msgs.AddError("No authentication request is pending.")
		return page.Result{}, false
	}
	if !sess.LoggedIn() {
		msgs.AddError("You must be logged in to confirm trust.")
		return page.Result{Status: page.StatusLoginForm}, true
	}

	redirect, err := s.engine.Authenticate(req, s.identityURL(sess.User.Name))
	if err != nil {
		// The pending request survives a failed assertion so the user can
		// decide again.
		msgs.AddError("Authentication response failed: %s", userFacing(err))
		return page.Result{
			Status:    page.StatusConfirmTrust,
			TrustRoot: req.TrustRoot,
		}, true
	}

	sess.ClearPendingRequest()
	return page.Result{Status: page.StatusProtocolResponse, Redirect: redirect}, true
}

// cancelPending produces the negative protocol response for the pending
// request. With nothing pending it is a no-op that declines the request, so
// dispatch continues with the remaining intents.
func (s *DispatchService) cancelPending(sess *domainauth.Session, msgs *page.Messages) (page.Result, bool) {
	redirect, err := s.engine.Cancel(sess.PendingRequest)
	if err != nil {
		msgs.AddError("Cancellation failed: %s", userFacing(err))
		return page.Result{Status: page.StatusLoginForm}, true
	}
	sess.ClearPendingRequest()
	if redirect == "" {
		return page.Result{}, false
	}
	return page.Result{Status: page.StatusProtocolResponse, Redirect: redirect}, true
}

// tryView claims view requests. The openid view decodes an incoming protocol
// request onto the session, then falls into the login view logic.
func (s *DispatchService) tryView(params page.Params, sess *domainauth.Session, msgs *page.Messages) (page.Result, bool) {
	view := page.ParseView(params.View)
	switch view {
	case page.ViewOpenID:
		req, err := s.engine.DecodeRequest(params.Values)
		if err != nil {
			// Malformed protocol requests surface as a banner; the user
			// still gets a best-effort page.
			msgs.AddError("The authentication request could not be understood.")
		} else if req != nil {
			sess.PendingRequest = req
		}
	case page.ViewLogin:
		// Handled below.
	case page.ViewNone:
		return page.Result{}, false
	}

	if sess.LoggedIn() {
		return page.Result{Status: page.StatusLoggedIn}, true
	}
	return page.Result{Status: page.StatusLoginForm}, true
}

// refine applies the post-dispatch rules: login forms get a fresh challenge
// nonce, and a logged-in user with a pending request is sent to the trust
// confirmation page.
func (s *DispatchService) refine(res page.Result, sess *domainauth.Session) (page.Result, error) {
	switch res.Status {
	case page.StatusLoginForm:
		nonce, err := randomString(s.nonceLength)
		if err != nil {
			return page.Result{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "generate login nonce")
		}
		sess.Nonce = nonce
		res.Nonce = nonce
	case page.StatusLoggedIn:
		if req := sess.PendingRequest; req != nil {
			res.Status = page.StatusConfirmTrust
			res.TrustRoot = req.TrustRoot
		}
	}
	return res, nil
}

// xrdsURL builds the discovery document URL for the given kind.
func (s *DispatchService) xrdsURL(kind page.XRDSKind, name string) string {
	u := s.baseURL + "?xrds=" + string(kind)
	if name != "" {
		u += "&name=" + url.QueryEscape(name)
	}
	return u
}

// identityURL is the canonical identity URL asserted for a name.
func (s *DispatchService) identityURL(name string) string {
	return s.baseURL + "?name=" + url.QueryEscape(name)
}

// userFacing strips wrapping noise from an error for display.
func userFacing(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// randomString generates a cryptographically secure URL-safe random string
// of exact length.
func randomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	// ceil(length*3/4) bytes encode to at least length base64 characters.
	b := make([]byte, (length*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b)[:length], nil
}
