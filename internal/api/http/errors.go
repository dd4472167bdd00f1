package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/prioritypro/prioritypro/internal/api/service"
	"github.com/prioritypro/prioritypro/internal/api/store"
	"github.com/prioritypro/prioritypro/pkg/slogx"
	"github.com/prioritypro/prioritypro/pkg/tasksdk"
)

// writeServiceError maps service-layer failures onto the wire error
// contract. Anything unrecognized is logged and reported as an opaque
// server_error so internals never leak into responses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		tasksdk.NewValidationError(vErr.Fields).WriteError(w)
	case errors.Is(err, service.ErrDuplicateIdentity):
		tasksdk.ErrDuplicateIdentity.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrTaskNotFound):
		tasksdk.ErrTaskNotFound.WriteError(w)
	case errors.Is(err, store.ErrUnavailable):
		log.Error("storage unavailable", "err", err)
		tasksdk.ErrStorageUnavailable.WriteError(w)
	default:
		log.Error("unhandled service error", "err", err)
		tasksdk.ErrServerError.WriteError(w)
	}
}

// writeBadBody rejects a request whose body was not the expected JSON
// document.
func writeBadBody(w http.ResponseWriter) {
	tasksdk.NewValidationError(map[string]string{
		"body": "request body must be a single JSON document",
	}).WriteError(w)
}
