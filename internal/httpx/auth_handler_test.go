package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tastetrial/paradise-api/internal/auth"
)

func newAuthRouter(t *testing.T, production bool) (*chi.Mux, *auth.Manager) {
	t.Helper()
	tokens, err := auth.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := chi.NewRouter()
	(&AuthHandler{Tokens: tokens, Production: production}).Register(r)
	return r, tokens
}

func TestIssueTokenSetsCookie(t *testing.T) {
	router, tokens := newAuthRouter(t, false)

	rec, _ := doJSON(t, router, http.MethodPost, "/jwt", map[string]any{"email": "pho@example.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == auth.CookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatalf("no %s cookie in %v", auth.CookieName, cookies)
	}
	if !session.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if session.Secure {
		t.Error("dev cookie must not be Secure")
	}

	// the cookie verifies against the same manager
	claims, err := tokens.Parse(session.Value)
	if err != nil {
		t.Fatalf("parse issued cookie: %v", err)
	}
	if claims["email"] != "pho@example.com" {
		t.Errorf("got claims %v", claims)
	}
}

func TestIssueTokenProductionCookie(t *testing.T) {
	router, _ := newAuthRouter(t, true)

	rec, _ := doJSON(t, router, http.MethodPost, "/jwt", map[string]any{"email": "pho@example.com"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name != auth.CookieName {
			continue
		}
		if !c.Secure || c.SameSite != http.SameSiteNoneMode {
			t.Errorf("prod cookie got secure=%v sameSite=%v", c.Secure, c.SameSite)
		}
		return
	}
	t.Fatal("no session cookie set")
}

func TestIssueTokenRejectsBadPayload(t *testing.T) {
	router, _ := newAuthRouter(t, false)

	rec, _ := doJSON(t, router, http.MethodPost, "/jwt", map[string]any{"name": "no email"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email: got status %d, want 400", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie set for rejected payload")
	}
}
