//go:build !raylib

package raylib

import (
	"errors"

	"gridsnake/internal/host"
	"gridsnake/internal/snake"
)

// ErrUnavailable is returned when the binary was built without the raylib tag.
var ErrUnavailable = errors.New("raylib backend requires building with the 'raylib' tag")

func init() {
	host.Register("raylib", Run)
}

// Run always reports that the raylib build tag is missing.
func Run(*snake.Session, host.Options) error {
	return ErrUnavailable
}
