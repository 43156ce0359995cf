package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gototest/internal/port"
)

// PrintOpener "opens" a file by writing its path, for editors that read it back.
type PrintOpener struct {
	out io.Writer
}

func (o *PrintOpener) Open(_ context.Context, path string) error {
	_, err := fmt.Fprintln(o.out, path)
	return err
}

// CommandOpener runs an editor command with the path appended as last argument.
type CommandOpener struct {
	name string
	args []string
}

func (o *CommandOpener) Open(ctx context.Context, path string) error {
	args := append(append([]string{}, o.args...), path)
	cmd := exec.CommandContext(ctx, o.name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", o.name, err)
	}
	return nil
}

// NewOpener returns a CommandOpener for a command line such as "code -g",
// or a PrintOpener writing to out when command is blank.
func NewOpener(command string, out io.Writer) port.FileOpener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &PrintOpener{out: out}
	}
	return &CommandOpener{
		name: fields[0],
		args: fields[1:],
	}
}
