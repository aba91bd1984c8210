// internal/host/pointer.go
package host

import (
	"go-sparkles/internal/input"

	"github.com/go-vgo/robotgo"
)

// GlobalPointer samples the OS cursor in screen coordinates. X11 only on
// Linux; Wayland does not expose the global position.
func GlobalPointer() input.Source {
	return input.SourceFunc(robotgo.Location)
}
