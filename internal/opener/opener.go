// Package opener hands a file to the desktop's default application.
package opener

import (
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"
)

var start = open.Start

// Open starts the default application for path without waiting for it.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := start(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
