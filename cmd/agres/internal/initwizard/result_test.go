package initwizard_test

import (
	"slices"
	"testing"

	"github.com/advdv/agres/cmd/agres/internal/initwizard"
)

func TestResult_Config(t *testing.T) {
	t.Parallel()

	t.Run("carries every persisted answer", func(t *testing.T) {
		t.Parallel()
		result := initwizard.Result{
			ProjectKey:       "myproj",
			BaseDomainName:   "example.org",
			EnvironmentKind:  "production",
			PrimaryRegion:    "us-east-1",
			SecondaryRegions: []string{"eu-west-1", "eu-north-1"},
		}

		cfg := result.Config()

		if cfg.Version != "1" {
			t.Errorf("expected version '1', got %q", cfg.Version)
		}
		if cfg.ProjectKey != "myproj" {
			t.Errorf("expected project key 'myproj', got %q", cfg.ProjectKey)
		}
		if cfg.BaseDomainName != "example.org" {
			t.Errorf("expected base domain 'example.org', got %q", cfg.BaseDomainName)
		}
		if cfg.PrimaryRegion != "us-east-1" {
			t.Errorf("the chosen primary region must be persisted, got %q", cfg.PrimaryRegion)
		}
		if !slices.Equal(cfg.SecondaryRegions, result.SecondaryRegions) {
			t.Errorf("the chosen secondary regions must be persisted, got %v", cfg.SecondaryRegions)
		}
	})

	t.Run("defaults produce a loadable config", func(t *testing.T) {
		t.Parallel()
		cfg := initwizard.DefaultResult("myproj").Config()

		if cfg.PrimaryRegion == "" {
			t.Error("default result must carry a primary region")
		}
		if cfg.ProjectKey != "myproj" {
			t.Errorf("expected project key 'myproj', got %q", cfg.ProjectKey)
		}
	})
}
