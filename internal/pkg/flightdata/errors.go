package flightdata

import (
	"net/http"

	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
)

var ErrMalformedRecord = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    "malformed record",
}

var ErrInvalidNumber = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    "invalid number",
}

var ErrInvalidRecord = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    "invalid record",
}
