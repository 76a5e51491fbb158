package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
