// Package prompt implements interactive confirmation via huh forms.
package prompt

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/vvm-tools/vvm/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompt asks yes/no questions on the terminal. Outside an interactive
// terminal every question is declined, so scripted runs never hang.
type Prompt struct{}

var _ ports.Prompter = (*Prompt)(nil)

// New creates a new Prompt.
func New() *Prompt {
	return &Prompt{}
}

// Confirm renders a yes/no form and returns the answer.
func (p *Prompt) Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	var answer bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		return false, zerr.Wrap(err, "confirmation prompt failed")
	}
	return answer, nil
}
