package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/services/auth"
	"gitlab.com/classhub-2025.net/internal/domain"
	"gitlab.com/classhub-2025.net/internal/handlers/response"
	"gitlab.com/classhub-2025.net/internal/static/errs"
)

type Handler struct {
	authService auth.IAuthService
	homeURL     string
	logger      primary.Logger
}

func NewHandler(authService auth.IAuthService, homeURL string, logger primary.Logger) *Handler {
	return &Handler{
		authService: authService,
		homeURL:     homeURL,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/google", h.GoogleLoginHandler).Methods("GET")
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
}

// GoogleLoginHandler issues a one-time login state and redirects the
// client to the Google consent screen carrying it.
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	url, err := h.authService.IssueLoginState(r.Context())
	if err != nil {
		h.logger.Error("Failed to issue login state", "error", err)
		response.WriteTypedError(w, err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler completes the social-login handshake. A missing,
// unknown or replayed state aborts the whole flow: the client is sent back
// to the app home and no session is created.
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		http.Redirect(w, r, h.homeURL, http.StatusTemporaryRedirect)
		return
	}

	token, err := h.authService.HandleCallback(r.Context(), state, code)
	if err != nil {
		if errors.Is(err, errs.InvalidState) {
			h.logger.Warn("Login flow aborted", "reason", "invalid state")
			http.Redirect(w, r, h.homeURL, http.StatusTemporaryRedirect)
			return
		}
		h.logger.Error("Login callback failed", "error", err)
		response.WriteTypedError(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: token})
}
