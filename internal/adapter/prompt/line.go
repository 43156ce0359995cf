package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineChooser prints a numbered list and reads the pick from a line of input.
// An empty line or end of input cancels.
type LineChooser struct {
	title string
	in    *bufio.Reader
	out   io.Writer
}

func NewLineChooser(title string, in io.Reader, out io.Writer) *LineChooser {
	return &LineChooser{
		title: title,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

func (c *LineChooser) Choose(ctx context.Context, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, nil
	}

	fmt.Fprintln(c.out, c.title)
	for i, opt := range options {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, opt)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}

		fmt.Fprintf(c.out, "Select 1-%d (empty to cancel): ", len(options))
		line, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", false, fmt.Errorf("failed to read selection: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return "", false, nil
		}

		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], true, nil
		}
		if err == io.EOF {
			return "", false, nil
		}
		fmt.Fprintf(c.out, "Invalid selection %q\n", line)
	}
}
