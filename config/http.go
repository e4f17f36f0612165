package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the public base URL of the provider (e.g.
	// "https://id.example.com/"). It is the sign-on endpoint advertised in
	// discovery documents and part of every identity URL.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080/"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.BaseURL == "" {
		h.BaseURL = "http://localhost:8080/"
	}
	if h.BaseURL[len(h.BaseURL)-1] != '/' {
		h.BaseURL += "/"
	}
}
