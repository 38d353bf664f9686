package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-path-planner/internal/pkg/exception"
)

var ErrNoRoutesFound = exception.ApplicationError{
	Message:    "no routes found",
	StatusCode: http.StatusNotFound,
}

var ErrInvalidMetric = exception.ApplicationError{
	Message:    "invalid metric",
	StatusCode: http.StatusBadRequest,
}
