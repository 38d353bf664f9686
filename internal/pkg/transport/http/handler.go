package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
)

// MakeHandlerFunc wires an endpoint with its codec into a handler. Errors are
// written by ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest binds the request body into a new T and runs its Bind hook.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	return req, nil
}

// NoRequest is the decoder of endpoints without a body.
func NoRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
