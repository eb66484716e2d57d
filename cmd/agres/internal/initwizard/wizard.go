package initwizard

// Wizard collects the answers that seed a new agres project: project key,
// base domain name, environment kind and regions. It is the interactive path
// of `agres init`; the answers map onto .agres.yml via Result.Config.
type Wizard struct {
	builder FormBuilder
	runner  FormRunner
}

func New(builder FormBuilder, runner FormRunner) *Wizard {
	return &Wizard{
		builder: builder,
		runner:  runner,
	}
}

// Run executes the wizard with defaults derived from defaultKey, typically
// the project directory name, and returns the collected answers.
func (w *Wizard) Run(defaultKey string) (Result, error) {
	var result Result
	form := w.builder.Build(defaultKey, &result)

	if err := w.runner.Run(form); err != nil {
		return Result{}, err
	}

	return result, nil
}
