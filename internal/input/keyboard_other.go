//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package input

import (
	"context"
	"errors"
	"os"
)

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

func (k *Keyboard) Run(ctx context.Context) error {
	return errors.ErrUnsupported
}
