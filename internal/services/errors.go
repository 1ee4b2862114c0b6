package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotOwner           = errors.New("caller does not own this party")
	ErrOwnerCannotApply   = errors.New("owner cannot apply to own party")
	ErrOwnerCannotSupport = errors.New("owner cannot support own party")
)
