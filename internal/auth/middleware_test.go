package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestVerify(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	newRequest := func(cookie string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/orderedFoods", nil)
		if cookie != "" {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
		}
		return r
	}

	t.Run("missing cookie is unauthorized and short-circuits", func(t *testing.T) {
		called := false
		h := m.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(""))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("got status %d", rec.Code)
		}
		if called {
			t.Error("handler ran without a credential")
		}
	})

	t.Run("garbage token is forbidden and short-circuits", func(t *testing.T) {
		called := false
		h := m.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("not.a.jwt"))
		if rec.Code != http.StatusForbidden {
			t.Errorf("got status %d", rec.Code)
		}
		if called {
			t.Error("handler ran with an invalid credential")
		}
	})

	t.Run("token from another secret is forbidden", func(t *testing.T) {
		other, _ := NewManager("other-secret", time.Hour)
		token, err := other.Issue(map[string]any{"email": "a@b.c"})
		if err != nil {
			t.Fatal(err)
		}
		h := m.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler ran with a foreign credential")
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(token))
		if rec.Code != http.StatusForbidden {
			t.Errorf("got status %d", rec.Code)
		}
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		token, err := m.Issue(map[string]any{"email": "pho@example.com"})
		if err != nil {
			t.Fatal(err)
		}
		h := m.Verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := IdentityFrom(r.Context())
			if !ok {
				t.Fatal("no identity in context")
			}
			if claims["email"] != "pho@example.com" {
				t.Errorf("got claims %v", claims)
			}
			w.WriteHeader(http.StatusOK)
		}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest(token))
		if rec.Code != http.StatusOK {
			t.Errorf("got status %d", rec.Code)
		}
	})
}

func TestIdentityFromMissing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := IdentityFrom(r.Context()); ok {
		t.Error("expected no identity on a bare context")
	}
}
