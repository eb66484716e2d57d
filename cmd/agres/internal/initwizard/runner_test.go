package initwizard_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/advdv/agres/cmd/agres/internal/initwizard"
	"github.com/charmbracelet/huh"
)

func TestAccessibleRunner(t *testing.T) {
	t.Parallel()

	t.Run("scripts a wizard prompt over buffers", func(t *testing.T) {
		t.Parallel()
		var output bytes.Buffer
		input := strings.NewReader("myproj\n")

		var key string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Project key").
					Validate(initwizard.ValidateProjectKey).
					Value(&key),
			),
		)

		runner := initwizard.NewAccessibleRunner(&output, input)
		if err := runner.Run(form); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "myproj" {
			t.Errorf("expected project key 'myproj', got %q", key)
		}
		if !strings.Contains(output.String(), "Project key") {
			t.Errorf("expected the prompt title in the output, got %q", output.String())
		}
	})
}
