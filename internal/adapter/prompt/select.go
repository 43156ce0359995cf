package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// SelectChooser shows an interactive terminal list.
type SelectChooser struct {
	title string
}

func NewSelectChooser(title string) *SelectChooser {
	return &SelectChooser{title: title}
}

// Choose blocks until the user picks an option or aborts.
func (c *SelectChooser) Choose(ctx context.Context, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, nil
	}

	choice := options[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(c.title).
				Options(huh.NewOptions(options...)...).
				Value(&choice),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("selection prompt failed: %w", err)
	}

	return choice, true, nil
}
