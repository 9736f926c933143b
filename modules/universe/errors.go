package universe

import "errors"

var (
	ErrUniverseNotFound  = errors.New("universe.not_found")
	ErrUniverseExists    = errors.New("universe.already_exists")
	ErrInvalidUniverseID = errors.New("universe.invalid_id")
	ErrNameRequired      = errors.New("universe.name_required")
	ErrInvalidRole       = errors.New("universe.invalid_role")
	ErrInvalidPayload    = errors.New("universe.invalid_payload")
)
