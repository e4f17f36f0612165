package openid

// Package openid adapts the OpenID 2.0/1.1 wire protocol for the provider:
// decoding checkid requests from relying parties and producing the signed
// positive or negative assertion redirects.

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	apperrors "github.com/nameid/nameid/internal/errors"
)

// Namespace URIs distinguishing protocol generations on the wire.
const (
	NamespaceV20 = "http://specs.openid.net/auth/2.0"

	// identitySelect is the 2.0 wildcard the relying party sends when the
	// user has not typed a specific identity URL yet.
	identitySelect = "http://specs.openid.net/auth/2.0/identifier_select"
)

// Engine implements ports.ProtocolEngine with private (stateless)
// associations: assertions are signed with a server-held HMAC secret and
// verified via check_authentication.
type Engine struct {
	// endpoint is the provider's base URL; signOn is the sign-on URI
	// advertised in discovery documents and asserted as op_endpoint.
	endpoint string
	signOn   string
	secret   []byte
	now      func() time.Time
}

// Config holds settings for the protocol engine.
type Config struct {
	// Endpoint is the provider's public base URL.
	Endpoint string
	// Secret keys the assertion HMAC. Generated when empty, which is fine
	// for development but breaks verification across restarts.
	Secret []byte
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

// NewEngine creates a protocol engine from Config.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Endpoint == "" {
		return nil, apperrors.Validation("protocol endpoint is required")
	}
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate association secret: %w", err)
		}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		endpoint: cfg.Endpoint,
		signOn:   cfg.Endpoint + "?view=openid",
		secret:   secret,
		now:      now,
	}, nil
}

// DecodeRequest parses an incoming checkid request from the raw protocol
// parameters. Values carrying no openid.mode yield (nil, nil); a checkid
// request missing its return address is a protocol error.
func (e *Engine) DecodeRequest(values url.Values) (*domainauth.Request, error) {
	mode := values.Get("openid.mode")
	switch mode {
	case "":
		return nil, nil
	case "checkid_setup", "checkid_immediate":
		// Handled below.
	default:
		return nil, apperrors.Protocolf("unsupported openid.mode %q", mode)
	}

	returnTo := values.Get("openid.return_to")
	if returnTo == "" {
		return nil, apperrors.Protocol("checkid request without openid.return_to")
	}
	if _, err := url.ParseRequestURI(returnTo); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeProtocol, "malformed openid.return_to")
	}

	version := domainauth.ProtocolV11
	if values.Get("openid.ns") == NamespaceV20 {
		version = domainauth.ProtocolV20
	}

	// 2.0 names the realm "realm"; 1.1 called it "trust_root". Fall back to
	// return_to when the relying party sent neither.
	trustRoot := values.Get("openid.realm")
	if trustRoot == "" {
		trustRoot = values.Get("openid.trust_root")
	}
	if trustRoot == "" {
		trustRoot = returnTo
	}

	claimed := values.Get("openid.claimed_id")
	if claimed == "" {
		claimed = values.Get("openid.identity")
	}
	if claimed == identitySelect {
		claimed = ""
	}

	return &domainauth.Request{
		TrustRoot: trustRoot,
		ReturnTo:  returnTo,
		ClaimedID: claimed,
		Version:   version,
		Immediate: mode == "checkid_immediate",
	}, nil
}

// Authenticate produces the positive assertion redirect for a confirmed
// trust decision. The assertion carries a response nonce and a private
// association handle, signed with HMAC-SHA256 over the signed fields.
func (e *Engine) Authenticate(req *domainauth.Request, claimedID string) (string, error) {
	if req == nil {
		return "", apperrors.Protocol("no pending request to authenticate")
	}
	if claimedID == "" {
		return "", apperrors.Validation("claimed identity is required")
	}

	nonce, err := responseNonce(e.now())
	if err != nil {
		return "", err
	}

	fields := url.Values{}
	fields.Set("openid.mode", "id_res")
	if req.Version == domainauth.ProtocolV20 {
		fields.Set("openid.ns", NamespaceV20)
		fields.Set("openid.op_endpoint", e.signOn)
		fields.Set("openid.claimed_id", claimedID)
	}
	fields.Set("openid.identity", claimedID)
	fields.Set("openid.return_to", req.ReturnTo)
	fields.Set("openid.response_nonce", nonce)
	fields.Set("openid.assoc_handle", e.assocHandle(nonce))

	signed := signedFieldList(req.Version)
	fields.Set("openid.signed", strings.Join(signed, ","))
	fields.Set("openid.sig", e.sign(fields, signed))

	return appendQuery(req.ReturnTo, fields)
}

// Cancel produces the negative assertion redirect. A nil request means
// nothing is pending and cancellation is a no-op.
func (e *Engine) Cancel(req *domainauth.Request) (string, error) {
	if req == nil {
		return "", nil
	}

	fields := url.Values{}
	fields.Set("openid.mode", "cancel")
	if req.Version == domainauth.ProtocolV20 {
		fields.Set("openid.ns", NamespaceV20)
	}
	return appendQuery(req.ReturnTo, fields)
}

// signedFieldList names the assertion fields covered by the signature, in
// key-value signing order.
func signedFieldList(version domainauth.ProtocolVersion) []string {
	if version == domainauth.ProtocolV20 {
		return []string{
			"op_endpoint", "claimed_id", "identity",
			"return_to", "response_nonce", "assoc_handle",
		}
	}
	return []string{"identity", "return_to", "response_nonce", "assoc_handle"}
}

// sign computes the base64 HMAC-SHA256 over the key-value form of the
// signed fields.
func (e *Engine) sign(fields url.Values, signed []string) string {
	var kv strings.Builder
	for _, name := range signed {
		kv.WriteString(name)
		kv.WriteString(":")
		kv.WriteString(fields.Get("openid." + name))
		kv.WriteString("\n")
	}
	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte(kv.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySignature re-checks an assertion signature, the provider's side of
// check_authentication for private associations.
func (e *Engine) VerifySignature(fields url.Values) bool {
	signed := strings.Split(fields.Get("openid.signed"), ",")
	expected := e.sign(fields, signed)
	return hmac.Equal([]byte(expected), []byte(fields.Get("openid.sig")))
}

// assocHandle derives a private association handle bound to the response
// nonce, recognizable later during check_authentication.
func (e *Engine) assocHandle(nonce string) string {
	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte("assoc:" + nonce))
	return "{priv}{" + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:12]) + "}"
}

// responseNonce builds the protocol response nonce: UTC timestamp plus
// unpredictable salt, unique per assertion.
func responseNonce(now time.Time) (string, error) {
	salt := make([]byte, 6)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate response nonce: %w", err)
	}
	return now.UTC().Format("2006-01-02T15:04:05Z") +
		base64.RawURLEncoding.EncodeToString(salt), nil
}

// appendQuery merges assertion fields onto the return_to URL, preserving
// query parameters the relying party put there.
func appendQuery(returnTo string, fields url.Values) (string, error) {
	u, err := url.Parse(returnTo)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeProtocol, "malformed return_to URL")
	}
	q := u.Query()
	for name, vals := range fields {
		for _, v := range vals {
			q.Set(name, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
