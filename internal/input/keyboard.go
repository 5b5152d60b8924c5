//go:build linux || darwin || freebsd || netbsd || openbsd

package input

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Keyboard drives a Source from a terminal in cbreak mode, so keys arrive
// without waiting for a newline. Ctrl-C still raises SIGINT.
type Keyboard struct {
	in     *os.File
	source *Source
}

func NewKeyboard(in *os.File, source *Source) *Keyboard {
	return &Keyboard{
		in:     in,
		source: source,
	}
}

// Run restores the terminal's previous mode before returning.
func (k *Keyboard) Run(ctx context.Context) error {
	fd := k.in.Fd()

	var canonical unix.Termios
	err := termios.Tcgetattr(fd, &canonical)
	if err != nil {
		return fmt.Errorf("keyboard input requires a terminal: %w", err)
	}

	cbreak := canonical
	termios.Cfmakecbreak(&cbreak)

	// keys typed before the kiosk started are discarded
	err = termios.Tcsetattr(fd, termios.TCSAFLUSH, &cbreak)
	if err != nil {
		return fmt.Errorf("failed to enter cbreak mode: %w", err)
	}
	defer termios.Tcsetattr(fd, termios.TCSANOW, &canonical)

	return k.source.Pump(ctx, k.in)
}
