package session

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// TokenStore persists the bearer token between page loads.
type TokenStore interface {
	Token(c *gin.Context) (string, bool)
	Save(c *gin.Context, token string)
	Clear(c *gin.Context)
}

type CookieOptions struct {
	Name     string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite string
}

// CookieStore keeps the token in a session cookie (no expiry).
type CookieStore struct {
	opts CookieOptions
}

func NewCookieStore(opts CookieOptions) *CookieStore {
	if opts.Name == "" {
		opts.Name = "token"
	}
	if opts.Path == "" {
		opts.Path = "/"
	}
	return &CookieStore{opts: opts}
}

func (s *CookieStore) Name() string {
	return s.opts.Name
}

func (s *CookieStore) Token(c *gin.Context) (string, bool) {
	raw, ok := CookieValue(c.GetHeader("Cookie"), s.opts.Name)
	if !ok {
		return "", false
	}
	token, err := url.QueryUnescape(raw)
	if err != nil || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}

// Save query-escapes the token so characters net/http would quote or drop
// survive the round trip unchanged.
func (s *CookieStore) Save(c *gin.Context, token string) {
	http.SetCookie(c.Writer, s.cookie(url.QueryEscape(token)))
}

// Clear overwrites the token with an empty, already expired cookie.
func (s *CookieStore) Clear(c *gin.Context) {
	ck := s.cookie("")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0).UTC()
	http.SetCookie(c.Writer, ck)
}

func (s *CookieStore) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     s.opts.Name,
		Value:    value,
		Path:     s.opts.Path,
		Secure:   s.opts.Secure,
		HttpOnly: s.opts.HTTPOnly,
		SameSite: ParseSameSite(s.opts.SameSite),
	}
}

// SetFlash stores a one-shot message shown on the next rendered page.
func (s *CookieStore) SetFlash(c *gin.Context, message string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     s.opts.Path,
		MaxAge:   60,
		Secure:   s.opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message and removes it.
func (s *CookieStore) PopFlash(c *gin.Context) string {
	raw, ok := CookieValue(c.GetHeader("Cookie"), flashCookieName)
	if !ok || raw == "" {
		return ""
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     s.opts.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		HttpOnly: true,
	})
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

func ParseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
