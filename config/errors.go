package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLogFormat = errors.New("unknown log_format (must be 'plain' or 'json')")
	ErrUnknownOutput    = errors.New("unknown output (must be 'text' or 'json')")
	ErrEmptyLogLevel    = errors.New("log_level must not be empty")
	ErrMissingSection   = errors.New("section is missing")
)

// ErrInSection is returned if validate basic does not pass for any underlying config service.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}
