package claims

import "errors"

var (
	ErrMissingSigningKey       = errors.New("claims.missing_signing_key")
	ErrInvalidToken            = errors.New("claims.invalid_token")
	ErrExpiredToken            = errors.New("claims.expired_token")
	ErrInvalidSignature        = errors.New("claims.invalid_signature")
	ErrUnexpectedSigningMethod = errors.New("claims.unexpected_signing_method")
)
