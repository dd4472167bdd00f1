package http

import (
	"net/http"

	"github.com/prioritypro/prioritypro/internal/api/service"
	"github.com/prioritypro/prioritypro/pkg/httpx"
	"github.com/prioritypro/prioritypro/pkg/slogx"
	"github.com/prioritypro/prioritypro/pkg/tasksdk"
)

type LoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange an email and password for a signed session token
//	@Description	The failure response is identical for an unknown email and a wrong password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest	true	"Account credentials"
//	@Success		200		{object}	tasksdk.LoginResponse	"token, username"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"invalid_credentials"
//	@Failure		503		{object}	tasksdk.ErrorResponse	"storage_unavailable"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.LoginRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		// A malformed body cannot carry valid credentials; answer with the
		// same uniform rejection as a wrong password.
		tasksdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	account, err := h.AccountService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	token, err := h.TokenService.Issue(account)
	if err != nil {
		log.Error("failed to issue token", "err", err)
		tasksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.LoginResponse{
		Token:    token,
		Username: account.Username,
	})
}
