package initwizard_test

import (
	"testing"

	"github.com/advdv/agres/cmd/agres/internal/initwizard"
)

func TestFormBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("creates form with default values", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		var result initwizard.Result
		form := builder.Build("myproject", &result)

		if form == nil {
			t.Fatal("expected form to be created")
		}
		if result.ProjectKey != "myproject" {
			t.Errorf("expected default project key 'myproject', got %q", result.ProjectKey)
		}
		if result.BaseDomainName != "example.com" {
			t.Errorf("expected default base domain 'example.com', got %q", result.BaseDomainName)
		}
		if result.PrimaryRegion != "eu-central-1" {
			t.Errorf("expected default primary region 'eu-central-1', got %q", result.PrimaryRegion)
		}
		if len(result.SecondaryRegions) != 0 {
			t.Errorf("expected no default secondary regions, got %v", result.SecondaryRegions)
		}
	})

	t.Run("uses provided default key", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		var result initwizard.Result
		builder.Build("custom-project", &result)

		if result.ProjectKey != "custom-project" {
			t.Errorf("expected project key 'custom-project', got %q", result.ProjectKey)
		}
	})
}
