package http

import (
	"net/http"

	"github.com/prioritypro/prioritypro/internal/api/service"
	"github.com/prioritypro/prioritypro/pkg/httpx"
	"github.com/prioritypro/prioritypro/pkg/tasksdk"
)

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new account from a username, email and password
//	@Description	Registration does not log in; call the login endpoint afterwards for a token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"Account credentials"
//	@Success		201		{object}	tasksdk.AccountResponse	"id, username, email, createdAt"
//	@Failure		400		{object}	tasksdk.ErrorResponse	"invalid_input or duplicate_identity"
//	@Failure		503		{object}	tasksdk.ErrorResponse	"storage_unavailable"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tasksdk.RegisterRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	account, err := h.AccountService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	})
}
