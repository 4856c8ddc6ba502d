package config

import "errors"

var (
	// ErrStrategy indicates an unknown strategy name.
	ErrStrategy = errors.New("config: unknown strategy")

	// ErrDuration indicates a time limit in neither Go nor unit form.
	ErrDuration = errors.New("config: invalid duration")

	// ErrInvalid indicates an out-of-range or inconsistent setting.
	ErrInvalid = errors.New("config: invalid setting")
)
