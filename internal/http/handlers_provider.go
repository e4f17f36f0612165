package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/nameid/nameid/internal/domain/auth"
	"github.com/nameid/nameid/internal/domain/page"
	apperrors "github.com/nameid/nameid/internal/errors"
	"github.com/nameid/nameid/internal/ports"
	"github.com/nameid/nameid/internal/service"
)

// sessionCookieName carries the opaque session token.
const sessionCookieName = "nameid_session"

// ProviderHandlers serves the single provider endpoint. Every request runs
// through the dispatcher; the handler's job is session plumbing and turning
// the dispatch result into an HTTP response.
type ProviderHandlers struct {
	Dispatch     *service.DispatchService
	Sessions     ports.SessionStore
	Renderer     *TemplateRenderer
	Endpoint     string
	CookieDomain string
	SessionTTL   time.Duration
	Logger       *slog.Logger
}

func (h *ProviderHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Handle processes one provider request: GET and POST are equivalent, both
// carry dispatch parameters in the merged form values.
func (h *ProviderHandlers) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, http.StatusBadRequest)
		return
	}
	params := page.ParamsFromValues(r.Form)

	sess := h.loadSession(r)

	res, err := h.Dispatch.Dispatch(r.Context(), params, &sess)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "dispatch failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		code := http.StatusInternalServerError
		if apperrors.IsUnavailable(err) {
			code = http.StatusBadGateway
		}
		h.renderError(w, code)
		return
	}

	// Sliding expiry: every dispatched request extends the session.
	sess.ExpiresAt = time.Now().Add(h.SessionTTL)
	if saveErr := h.Sessions.Save(r.Context(), sess); saveErr != nil {
		h.logger().WarnContext(r.Context(), "session save failed",
			slog.String("token", sess.Token), slog.Any("error", saveErr))
	}
	h.setSessionCookie(w, r, sess)

	h.render(w, r, res, &sess)
}

// loadSession returns the session for the request's cookie, or a fresh one
// when the cookie is absent, unknown, or expired.
func (h *ProviderHandlers) loadSession(r *http.Request) domainauth.Session {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		sess, getErr := h.Sessions.Get(r.Context(), cookie.Value)
		if getErr == nil {
			return sess
		}
	}
	return domainauth.Session{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(h.SessionTTL),
	}
}

func (h *ProviderHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
	})
}

// render maps the dispatch result onto the wire.
func (h *ProviderHandlers) render(w http.ResponseWriter, r *http.Request, res page.Result, sess *domainauth.Session) {
	switch res.Status {
	case page.StatusXRDSGeneral, page.StatusXRDSIdentity:
		h.renderXRDS(w, r, res.XRDS)
		return
	case page.StatusProtocolResponse:
		http.Redirect(w, r, res.Redirect, http.StatusFound)
		return
	}

	// Page responses are session-dependent and never cacheable.
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if res.DiscoveryURL != "" {
		w.Header().Set("X-XRDS-Location", res.DiscoveryURL)
	}

	data := PageData{
		Endpoint: h.Endpoint,
		Messages: res.Messages,
	}
	if sess.User != nil {
		data.UserName = sess.User.Name
	}

	switch res.Status {
	case page.StatusLoginForm:
		data.Title = "Log in"
		data.Nonce = res.Nonce
		h.Renderer.Render(w, "login_form", data)
	case page.StatusLoggedIn:
		data.Title = "Logged in"
		h.Renderer.Render(w, "logged_in", data)
	case page.StatusConfirmTrust:
		data.Title = "Confirm identity"
		data.TrustRoot = res.TrustRoot
		h.Renderer.Render(w, "confirm_trust", data)
	case page.StatusIdentityPage:
		data.Title = "Identity: " + res.IdentityName
		data.Name = res.IdentityName
		data.Address = res.Identity.Address
		data.Profile = res.Identity.Profile()
		h.Renderer.Render(w, "identity", data)
	case page.StatusIdentityNotFound:
		data.Title = "Identity not found"
		data.Name = res.IdentityName
		h.Renderer.RenderStatus(w, http.StatusNotFound, "identity_not_found", data)
	default:
		data.Title = "Identity provider"
		h.Renderer.Render(w, "default", data)
	}
}

func (h *ProviderHandlers) renderXRDS(w http.ResponseWriter, r *http.Request, kind page.XRDSKind) {
	body, err := RenderXRDS(kind, h.Endpoint)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "discovery document render failed", slog.Any("error", err))
		h.renderError(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentTypeXRDS)
	if _, writeErr := w.Write(body); writeErr != nil {
		return
	}
}

func (h *ProviderHandlers) renderError(w http.ResponseWriter, code int) {
	h.Renderer.RenderStatus(w, code, "error", PageData{Title: "Something went wrong"})
}
