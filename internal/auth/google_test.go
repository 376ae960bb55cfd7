package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoginStatesAreSingleUse(t *testing.T) {
	states := newLoginStates(time.Minute)
	state := states.issue()

	if !states.redeem(state) {
		t.Fatal("expected fresh state to redeem")
	}
	if states.redeem(state) {
		t.Fatal("expected state to be single-use")
	}
	if states.redeem("never-issued") {
		t.Fatal("expected unknown state to fail")
	}
}

func TestLoginStatesExpire(t *testing.T) {
	states := newLoginStates(time.Minute)
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	states.now = func() time.Time { return now }

	state := states.issue()
	now = now.Add(2 * time.Minute)
	if states.redeem(state) {
		t.Fatal("expected expired state to fail")
	}

	// Issuing sweeps anything already past its deadline.
	stale := states.issue()
	now = now.Add(2 * time.Minute)
	states.issue()
	states.mu.Lock()
	_, ok := states.pending[stale]
	states.mu.Unlock()
	if ok {
		t.Fatal("expected expired entry to be swept on issue")
	}
}

func TestTokenRedirect(t *testing.T) {
	got, err := tokenRedirect("https://app.example.com/signin?from=cta", "abc123")
	if err != nil {
		t.Fatalf("tokenRedirect: %v", err)
	}
	if !strings.Contains(got, "token=abc123") || !strings.Contains(got, "from=cta") {
		t.Fatalf("unexpected redirect: %q", got)
	}

	if _, err := tokenRedirect("", "abc123"); err == nil {
		t.Fatal("expected error for empty redirect URL")
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("client", "secret", "https://api.example.com/cb", "https://app.example.com")

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=x", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown state, got %d", resp.Code)
	}
}

func TestSignInRequiresConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("", "", "", "https://app.example.com")

	r := gin.New()
	svc.RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when unconfigured, got %d", resp.Code)
	}
}
