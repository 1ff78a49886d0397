package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	apperrors "nucleav-frontend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

type contextKey struct{}

// Provider supplies the bearer token for outbound platform API calls
type Provider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// WithAccessToken stores the caller's access token in ctx
func WithAccessToken(ctx context.Context, accessToken string) context.Context {
	return context.WithValue(ctx, contextKey{}, accessToken)
}

// AccessTokenFromContext returns the access token stored in ctx
func AccessTokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(contextKey{}).(string)
	return tok
}

// ContextProvider reads the token the auth middleware placed in the request context
type ContextProvider struct {
	now func() time.Time
}

// NewContextProvider creates a provider backed by the request context
func NewContextProvider() *ContextProvider {
	return &ContextProvider{now: time.Now}
}

// Token returns the request's token or an AuthenticationError before any I/O happens
func (p *ContextProvider) Token(ctx context.Context) (*oauth2.Token, error) {
	return checkToken(AccessTokenFromContext(ctx), p.now())
}

// StaticProvider serves a fixed service token through an oauth2.TokenSource
type StaticProvider struct {
	source oauth2.TokenSource
	now    func() time.Time
}

// NewStaticProvider creates a provider for a configured service token
func NewStaticProvider(accessToken string) *StaticProvider {
	return &StaticProvider{
		source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}),
		now:    time.Now,
	}
}

// Token returns the service token after the same checks as ContextProvider
func (p *StaticProvider) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := p.source.Token()
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}
	return checkToken(tok.AccessToken, p.now())
}

// FallbackProvider prefers the request token and falls back to a service token
type FallbackProvider struct {
	Primary  Provider
	Fallback Provider
}

func (p FallbackProvider) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := p.Primary.Token(ctx)
	if err == nil || p.Fallback == nil || AccessTokenFromContext(ctx) != "" {
		return tok, err
	}
	return p.Fallback.Token(ctx)
}

func checkToken(raw string, now time.Time) (*oauth2.Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.ErrMissingAccessToken
	}

	tok := &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}

	// Opaque tokens are passed through; JWTs are checked for expiry locally.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return tok, nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return tok, nil
	}
	if !exp.After(now) {
		return nil, apperrors.ErrAccessTokenExpired
	}
	tok.Expiry = exp.Time
	return tok, nil
}

// Username extracts a display name from a JWT access token, if it carries one
func Username(raw string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	for _, key := range []string{"username", "email", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Key identifies the caller's session for per-session state such as open
// views and queued notifications. It is the token's username claim when it has
// one, otherwise a digest of the token. Requests without a token share "".
func Key(ctx context.Context) string {
	raw := strings.TrimSpace(AccessTokenFromContext(ctx))
	if raw == "" {
		return ""
	}
	if name := Username(raw); name != "" {
		return "user:" + name
	}
	sum := sha256.Sum256([]byte(raw))
	return "token:" + hex.EncodeToString(sum[:12])
}
