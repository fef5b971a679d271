package domain

import "errors"

var (
	ErrCountryNotFound    = errors.New("country not found")
	ErrGatewayUnavailable = errors.New("external data source unavailable")
	ErrInvalidQuery       = errors.New("invalid query")
	ErrImageNotFound      = errors.New("summary image not found")
)
