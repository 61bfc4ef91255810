package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
	"github.com/dtroode/fintrack-web/internal/storage/cookie"
)

// GuardConfig configures the session guard.
type GuardConfig struct {
	// ProtectedPrefixes are matched exactly or as a path segment prefix.
	ProtectedPrefixes []string
	LoginPath         string
	// RefreshOnly decides requests with a refresh token but no access token.
	RefreshOnly model.GuardPolicy
}

// Guard redirects requests for protected pages that carry no usable session
// cookies to the login page. It reads cookies only and never calls the backend.
type Guard struct {
	prefixes    []string
	loginPath   string
	refreshOnly model.GuardPolicy
	logger      *logger.Logger
}

func NewGuard(cfg GuardConfig, logger *logger.Logger) *Guard {
	prefixes := make([]string, 0, len(cfg.ProtectedPrefixes))
	for _, p := range cfg.ProtectedPrefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		if len(p) > 1 {
			p = strings.TrimRight(p, "/")
		}
		prefixes = append(prefixes, p)
	}

	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}

	return &Guard{prefixes: prefixes, loginPath: loginPath, refreshOnly: cfg.RefreshOnly, logger: logger}
}

func (g *Guard) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Protected(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if reason, ok := g.allow(r); !ok {
			g.logger.Debug("Session guard: redirecting to login",
				"path", r.URL.Path,
				"reason", reason)
			http.Redirect(w, r, g.loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Protected reports whether path falls under a protected prefix.
func (g *Guard) Protected(path string) bool {
	for _, p := range g.prefixes {
		if p == "/" || path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func (g *Guard) allow(r *http.Request) (string, bool) {
	var tokens model.AuthTokens
	if c, err := r.Cookie(model.TokensKey); err == nil && c.Value != "" {
		if err := cookie.Decode(c.Value, &tokens); err != nil {
			return "unreadable tokens cookie", false
		}
	}

	if !tokens.HasAccess() {
		tokens.AccessToken = discrete(r, model.AccessTokenKey)
	}
	if !tokens.HasRefresh() {
		tokens.RefreshToken = discrete(r, model.RefreshTokenKey)
	}

	switch {
	case tokens.HasAccess():
		return "", true
	case tokens.HasRefresh():
		if g.refreshOnly == model.PolicyRedirect {
			return "access token missing", false
		}
		return "", true
	default:
		return "no session", false
	}
}

func discrete(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return ""
	}
	var value string
	if err := cookie.Decode(c.Value, &value); err != nil {
		return ""
	}
	return value
}
