package page

// Package page defines the dispatch vocabulary: the request parameters the
// provider understands, the closed set of page statuses a dispatch resolves
// to, and the immutable result a dispatch produces.

import (
	"fmt"
	"net/url"

	"github.com/nameid/nameid/internal/domain/identity"
)

// Status is the terminal outcome of a dispatch. Exactly one status is
// produced per request; intent checks short-circuit on the first match.
type Status string

const (
	// StatusUnknown is the transient initial value. It is never observed by
	// callers of Dispatch.
	StatusUnknown Status = "unknown"

	StatusXRDSGeneral      Status = "xrds-general"
	StatusXRDSIdentity     Status = "xrds-identity"
	StatusIdentityPage     Status = "identityPage"
	StatusIdentityNotFound Status = "identityNotFound"
	StatusLoginForm        Status = "loginForm"
	StatusLoggedIn         Status = "loggedIn"
	StatusConfirmTrust     Status = "confirmTrust"
	StatusDefault          Status = "default"

	// StatusProtocolResponse means the protocol engine already produced the
	// response for this request; the Result carries the redirect and no page
	// is rendered.
	StatusProtocolResponse Status = "protocolResponse"
)

// Action is the closed set of user actions. Parsing to an enum keeps the
// dispatch match exhaustive; an unrecognized string maps to ActionNone.
type Action string

const (
	ActionNone   Action = ""
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
	ActionTrust  Action = "trust"
)

// ParseAction maps the raw action parameter to the closed enum.
func ParseAction(raw string) Action {
	switch raw {
	case "login", "logout", "trust":
		return Action(raw)
	default:
		return ActionNone
	}
}

// View is the closed set of requested views.
type View string

const (
	ViewNone   View = ""
	ViewOpenID View = "openid"
	ViewLogin  View = "login"
)

// ParseView maps the raw view parameter to the closed enum.
func ParseView(raw string) View {
	switch raw {
	case "openid", "login":
		return View(raw)
	default:
		return ViewNone
	}
}

// XRDSKind selects which discovery document a request asked for.
type XRDSKind string

const (
	XRDSNone     XRDSKind = ""
	XRDSGeneral  XRDSKind = "general"
	XRDSIdentity XRDSKind = "identity"
)

// Params is the dispatch-relevant slice of an inbound request. Values is kept
// around for the protocol engine, which reads the embedded openid.* fields.
type Params struct {
	XRDS   string
	Name   string
	Action string
	View   string

	// Login action fields.
	Identity  string
	Signature string
	Nonce     string

	// Submit controls. At most one should be present per action; an
	// inconsistent set is reported as a validation problem, never a crash.
	SubmitLogin   bool
	SubmitCancel  bool
	SubmitTrust   bool
	SubmitNoTrust bool

	Values url.Values
}

// ParamsFromValues extracts dispatch parameters from decoded form/query values.
func ParamsFromValues(v url.Values) Params {
	return Params{
		XRDS:          v.Get("xrds"),
		Name:          v.Get("name"),
		Action:        v.Get("action"),
		View:          v.Get("view"),
		Identity:      v.Get("identity"),
		Signature:     v.Get("signature"),
		Nonce:         v.Get("nonce"),
		SubmitLogin:   v.Has("login"),
		SubmitCancel:  v.Has("cancel"),
		SubmitTrust:   v.Has("trust"),
		SubmitNoTrust: v.Has("notrust"),
		Values:        v,
	}
}

// MessageKind classifies a per-request message.
type MessageKind string

const (
	MessageInfo  MessageKind = "info"
	MessageError MessageKind = "error"
)

// Message is a user-visible notice collected during dispatch and rendered
// alongside the resolved page.
type Message struct {
	Kind MessageKind
	Text string
}

// Messages is the per-request message list.
type Messages []Message

// Add appends an informational message.
func (m *Messages) Add(format string, args ...any) {
	*m = append(*m, Message{Kind: MessageInfo, Text: fmt.Sprintf(format, args...)})
}

// AddError appends an error message.
func (m *Messages) AddError(format string, args ...any) {
	*m = append(*m, Message{Kind: MessageError, Text: fmt.Sprintf(format, args...)})
}

// Result is the immutable outcome of a dispatch. The handler renders it; the
// session mutations already happened in memory and are persisted at exit.
type Result struct {
	Status Status

	// XRDS names the discovery document to render for xrds statuses.
	XRDS XRDSKind

	// IdentityName is set for identity page and not-found statuses.
	IdentityName string

	// Identity is the resolved record for StatusIdentityPage.
	Identity *identity.Record

	// DiscoveryURL is the discovery-location hint attached via the
	// X-XRDS-Location header. Empty when no hint applies; discovery
	// document responses never carry it.
	DiscoveryURL string

	// Nonce is the fresh challenge nonce issued for a login form.
	Nonce string

	// TrustRoot is surfaced for StatusConfirmTrust.
	TrustRoot string

	// Redirect carries the protocol response location for
	// StatusProtocolResponse.
	Redirect string

	Messages Messages
}
