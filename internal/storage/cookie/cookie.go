package cookie

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/dtroode/fintrack-web/internal/logger"
	"github.com/dtroode/fintrack-web/internal/model"
)

// MaxAge is the lifetime of session cookies in seconds (30 days).
const MaxAge = 30 * 24 * 60 * 60

var _ model.Storage = (*Storage)(nil)

// Options controls the attributes of written cookies.
type Options struct {
	Secure   bool
	SameSite http.SameSite
}

type headerTracker interface {
	HeadersSent() bool
}

// Storage binds the Storage port to the cookie jar of one request/response pair.
type Storage struct {
	w      http.ResponseWriter
	r      *http.Request
	opts   Options
	logger *logger.Logger

	mu sync.Mutex
	// pending holds values written during this request; nil marks a deletion.
	pending map[string]*string
}

// New creates cookie storage for the given request. Pass a writer from Track
// so that writes after the headers were sent are detected.
func New(w http.ResponseWriter, r *http.Request, opts Options, logger *logger.Logger) *Storage {
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return &Storage{
		w:       w,
		r:       r,
		opts:    opts,
		logger:  logger,
		pending: make(map[string]*string),
	}
}

func (s *Storage) Get(_ context.Context, key string, dst any) bool {
	raw, ok := s.lookup(key)
	if !ok {
		return false
	}

	if err := Decode(raw, dst); err != nil {
		s.logger.Debug("Cookie storage: dropping unreadable cookie",
			"key", key,
			"error", err.Error())
		return false
	}
	return true
}

func (s *Storage) Set(_ context.Context, key string, value any) (model.WriteResult, error) {
	encoded, err := Encode(value)
	if err != nil {
		return model.WriteDegraded, err
	}

	return s.write(key, &encoded, MaxAge), nil
}

func (s *Storage) Delete(_ context.Context, key string) (model.WriteResult, error) {
	return s.write(key, nil, -1), nil
}

func (s *Storage) lookup(key string) (string, bool) {
	s.mu.Lock()
	pending, written := s.pending[key]
	s.mu.Unlock()

	if written {
		if pending == nil {
			return "", false
		}
		return *pending, true
	}

	if s.r == nil {
		return "", false
	}
	c, err := s.r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *Storage) write(key string, value *string, maxAge int) model.WriteResult {
	if t, ok := s.w.(headerTracker); ok && t.HeadersSent() {
		s.logger.Warn("Cookie storage: response headers already sent, write dropped",
			"key", key)
		return model.WriteDegraded
	}

	c := &http.Cookie{
		Name:     key,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	}
	if value != nil {
		c.Value = *value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dropSetCookie(s.w.Header(), key)
	http.SetCookie(s.w, c)
	s.pending[key] = value

	return model.WriteApplied
}

// dropSetCookie removes an earlier Set-Cookie for name so only the last write is sent.
func dropSetCookie(h http.Header, name string) {
	values := h.Values("Set-Cookie")
	if len(values) == 0 {
		return
	}

	prefix := name + "="
	kept := values[:0:0]
	for _, v := range values {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}

	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}
