package island

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks parameters rejected before any mutation.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNoTerrain is returned by road and zone phases run before terrain.
	ErrNoTerrain = errors.New("terrain not generated")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
