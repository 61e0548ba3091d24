package entity

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
)

const (
	ErrMsgInternal     = "Internal server error"
	ErrMsgBadRequest   = "Bad request"
	ErrMsgUnauthorized = "Authentication required"
	ErrMsgForbidden    = "Forbidden"
	ErrMsgNotFound     = "Not found"
)
