package runesplit

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("runesplit: invalid argument")
	ErrInvalidEntry    = errors.New("runesplit: invalid map entry")
	ErrDuplicateKey    = errors.New("runesplit: duplicate key")
)

func newArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func newEntryError(entry string) error {
	return fmt.Errorf("%w: %q", ErrInvalidEntry, entry)
}

func newDuplicateKeyError(key string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
}
