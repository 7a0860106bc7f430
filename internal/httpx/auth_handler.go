package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tastetrial/paradise-api/internal/auth"
)

type AuthHandler struct {
	Tokens     *auth.Manager
	Production bool
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/jwt", h.issue)
}

// issue mints a session cookie from the posted identity payload. The payload
// is taken at face value; authenticating the caller happens upstream.
func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request) {
	var identity map[string]any
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if email, _ := identity["email"].(string); email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not sign token")
		return
	}
	http.SetCookie(w, h.Tokens.NewCookie(token, h.Production))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
