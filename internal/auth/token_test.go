package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewManager(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Error("expected error for empty secret")
	}
	if _, err := NewManager("secret", 0); err == nil {
		t.Error("expected error for zero ttl")
	}
	if _, err := NewManager("secret", time.Hour); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	identity := map[string]any{"email": "pho@example.com", "name": "Pho Fan"}
	token, err := m.Issue(identity)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, ok := identity["exp"]; ok {
		t.Error("Issue mutated the input claims")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["email"] != "pho@example.com" || claims["name"] != "Pho Fan" {
		t.Errorf("claims did not survive: %v", claims)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim: %v", claims)
	}
	if time.Unix(int64(exp), 0).Before(time.Now().Add(59 * time.Minute)) {
		t.Errorf("exp too soon: %v", time.Unix(int64(exp), 0))
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewManager("right-secret", time.Hour)
	verifier, _ := NewManager("wrong-secret", time.Hour)

	token, err := issuer.Issue(map[string]any{"email": "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Error("expected signature error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@b.c",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Error("expected expiry error")
	}
}

func TestParseRejectsWrongAlgorithm(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "a@b.c"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Error("expected signing method error")
	}
}

func TestNewCookie(t *testing.T) {
	m, _ := NewManager("test-secret", time.Hour)

	dev := m.NewCookie("tok", false)
	if dev.Name != CookieName || dev.Value != "tok" {
		t.Errorf("got %q=%q", dev.Name, dev.Value)
	}
	if !dev.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if dev.Secure || dev.SameSite != http.SameSiteLaxMode {
		t.Errorf("dev cookie got secure=%v sameSite=%v", dev.Secure, dev.SameSite)
	}
	if dev.MaxAge != 3600 {
		t.Errorf("got MaxAge=%d", dev.MaxAge)
	}

	prod := m.NewCookie("tok", true)
	if !prod.Secure || prod.SameSite != http.SameSiteNoneMode {
		t.Errorf("prod cookie got secure=%v sameSite=%v", prod.Secure, prod.SameSite)
	}
}
