// Package auth implements the Google sign-in flow. A successful callback
// mints a first-party JWT and hands it to the UI via redirect; no user row is
// persisted, identity lives entirely in the token.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	sharedauth "resume-builder/internal/shared/auth"
	"resume-builder/internal/shared/server/respond"
)

const (
	oidcUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	loginStateTTL   = 5 * time.Minute
)

// GoogleService drives the OAuth code flow against Google.
type GoogleService struct {
	conf       *oauth2.Config
	uiRedirect string
	states     *loginStates
}

// NewGoogleService builds a GoogleService. uiRedirect is where the signed
// token is delivered after a successful callback.
func NewGoogleService(clientID, clientSecret, redirectURL, uiRedirect string) *GoogleService {
	return &GoogleService{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		uiRedirect: uiRedirect,
		states:     newLoginStates(loginStateTTL),
	}
}

// RegisterRoutes attaches the sign-in routes. Both are exempt from the auth
// middleware by path prefix.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.signIn)
	rg.GET("/auth/google/callback", s.finish)
}

func (s *GoogleService) configured() bool {
	return s.conf.ClientID != "" && s.conf.ClientSecret != "" && s.conf.RedirectURL != ""
}

func (s *GoogleService) signIn(c *gin.Context) {
	if !s.configured() {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google auth not configured", nil)
		return
	}

	state := s.states.issue()
	c.Redirect(http.StatusFound, s.conf.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

func (s *GoogleService) finish(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}
	if !s.states.redeem(state) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}

	who, err := s.identify(ctx, token)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", nil)
		return
	}

	jwt, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:     "google:" + who.Subject,
		Email:   who.Email,
		Name:    who.Name,
		Picture: who.Picture,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	target, err := tokenRedirect(s.uiRedirect, jwt)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}
	c.Redirect(http.StatusFound, target)
}

// identity is the subset of the OIDC userinfo claims the service uses.
type identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) identify(ctx context.Context, token *oauth2.Token) (identity, error) {
	resp, err := s.conf.Client(ctx, token).Get(oidcUserInfoURL)
	if err != nil {
		return identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var who identity
	if err := json.NewDecoder(resp.Body).Decode(&who); err != nil {
		return identity{}, err
	}
	if who.Subject == "" {
		return identity{}, errors.New("userinfo response missing sub")
	}
	return who, nil
}

// tokenRedirect appends the signed token to the UI redirect URL.
func tokenRedirect(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// loginStates tracks outstanding OAuth state nonces. Each is single-use and
// expires after ttl; expired entries are swept whenever a new one is issued.
type loginStates struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]time.Time
	now     func() time.Time
}

func newLoginStates(ttl time.Duration) *loginStates {
	return &loginStates{
		ttl:     ttl,
		pending: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *loginStates) issue() string {
	state := uuid.NewString()
	now := l.now()

	l.mu.Lock()
	for s, exp := range l.pending {
		if now.After(exp) {
			delete(l.pending, s)
		}
	}
	l.pending[state] = now.Add(l.ttl)
	l.mu.Unlock()
	return state
}

func (l *loginStates) redeem(state string) bool {
	l.mu.Lock()
	exp, ok := l.pending[state]
	if ok {
		delete(l.pending, state)
	}
	l.mu.Unlock()
	return ok && !l.now().After(exp)
}
