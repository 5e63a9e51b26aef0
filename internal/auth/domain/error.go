package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSuperadminRequired = errors.New("superadmin access required")
	ErrSuperadminNotFound = errors.New("superadmin not found")
)
