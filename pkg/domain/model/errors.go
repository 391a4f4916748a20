package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrAppNotFound    = goerr.New("app not found")
	ErrInvalidPort    = goerr.New("port must be between 1 and 65535")
	ErrInvalidPageURL = goerr.New("page URL must be an absolute http or https URL")
)
