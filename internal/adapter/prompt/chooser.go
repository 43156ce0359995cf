package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"gototest/internal/port"
)

const (
	ModeAuto   = "auto"
	ModeSelect = "select"
	ModeLine   = "line"
	ModeFirst  = "first"
)

const defaultTitle = "Several matching files found"

// FirstChooser always takes the best-ranked option without asking.
type FirstChooser struct{}

func (FirstChooser) Choose(_ context.Context, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, nil
	}
	return options[0], true, nil
}

// New returns the chooser for mode. In auto mode an interactive select is
// used when in is a terminal, a numbered line prompt otherwise.
func New(mode string, in *os.File, out io.Writer) (port.Chooser, error) {
	switch mode {
	case ModeAuto, "":
		if isTerminal(in) {
			return NewSelectChooser(defaultTitle), nil
		}
		return NewLineChooser(defaultTitle, in, out), nil
	case ModeSelect:
		return NewSelectChooser(defaultTitle), nil
	case ModeLine:
		return NewLineChooser(defaultTitle, in, out), nil
	case ModeFirst:
		return FirstChooser{}, nil
	default:
		return nil, fmt.Errorf("unknown prompt mode: %s", mode)
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
