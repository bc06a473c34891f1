package adapter

import "errors"

var (
	ErrTextExtraction      = errors.New("failed to extract text from document")
	ErrEmptyAIResponse     = errors.New("ai response is empty")
	ErrMalformedAIResponse = errors.New("ai response is not a question list")
	ErrUnknownAIProvider   = errors.New("unknown ai provider")
)

// Errors mapped from HTTP status codes of the completion endpoint.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
