//go:build !ebiten

package app

import (
	"errors"

	"gridsnake/internal/host"
	"gridsnake/internal/snake"
)

// ErrWindowUnavailable is returned when the binary was built without the
// ebiten tag.
var ErrWindowUnavailable = errors.New("window backend requires building with the 'ebiten' tag (or use -backend terminal)")

func init() {
	host.Register("window", Run)
}

// Run always reports that the GUI build tag is missing.
func Run(*snake.Session, host.Options) error {
	return ErrWindowUnavailable
}
