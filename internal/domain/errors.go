package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists with email: %s")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrReferenceInUse     = errors.New("reference recorded for another user")
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")
	ErrGatewayAuth        = errors.New("payment gateway rejected credentials")
)
