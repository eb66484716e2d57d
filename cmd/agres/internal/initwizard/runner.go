package initwizard

import (
	"io"

	"github.com/charmbracelet/huh"
)

// FormRunner executes the built init form. The indirection separates the
// questions (FormBuilder) from the terminal they run on, so tests script the
// wizard through buffers and the CLI picks TUI or accessible mode per flag.
type FormRunner interface {
	Run(form *huh.Form) error
}

// InteractiveRunner runs the form as a TUI on the current terminal. This is
// the default for `agres init`.
type InteractiveRunner struct{}

func NewInteractiveRunner() *InteractiveRunner {
	return &InteractiveRunner{}
}

func (r *InteractiveRunner) Run(form *huh.Form) error {
	return form.Run()
}

// AccessibleRunner runs the form in huh's accessible mode: sequential plain
// prompts on the given streams, no cursor addressing. Selected with
// `agres init --accessible`, and the way tests drive the wizard.
type AccessibleRunner struct {
	output io.Writer
	input  io.Reader
}

func NewAccessibleRunner(output io.Writer, input io.Reader) *AccessibleRunner {
	return &AccessibleRunner{
		output: output,
		input:  input,
	}
}

func (r *AccessibleRunner) Run(form *huh.Form) error {
	return form.
		WithAccessible(true).
		WithOutput(r.output).
		WithInput(r.input).
		Run()
}
