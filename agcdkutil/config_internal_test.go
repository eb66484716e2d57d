//nolint:paralleltest // mutation-table tests, sequential execution is fine
package agcdkutil

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// validConfig returns a Config passing struct validation. Cases mutate single
// fields to probe individual rules.
func validConfig() Config {
	return Config{
		Prefix:           "test-",
		Qualifier:        "testq",
		PrimaryRegion:    "us-east-1",
		SecondaryRegions: []string{"eu-west-1"},
		RegionIdents: map[string]string{
			"us-east-1": "use1",
			"eu-west-1": "euw1",
		},
		Deployments:    []string{"Dev"},
		BaseDomainName: "example.com",
		DeployersGroup: "deployers",
		Env:            MapEnviron(nil),
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		// mutate breaks one aspect of the valid config; nil keeps it valid.
		mutate func(*Config)
		// wantErr are substrings every case expects in the formatted messages.
		wantErr []string
	}{
		{
			name: "valid - all regions have idents",
		},
		{
			name: "invalid - primary region missing from RegionIdents",
			mutate: func(c *Config) {
				c.SecondaryRegions = nil
				c.RegionIdents = map[string]string{}
			},
			wantErr: []string{"RegionIdents", "missing entry for region", "us-east-1"},
		},
		{
			name: "invalid - secondary region missing from RegionIdents",
			mutate: func(c *Config) {
				c.SecondaryRegions = []string{"eu-west-1", "ap-southeast-1"}
			},
			wantErr: []string{"missing entry for region", "ap-southeast-1"},
		},
		{
			name: "invalid - multiple regions missing from RegionIdents",
			mutate: func(c *Config) {
				c.SecondaryRegions = []string{"eu-west-1", "ap-southeast-1"}
				c.RegionIdents = map[string]string{}
			},
			wantErr: []string{"us-east-1", "eu-west-1", "ap-southeast-1"},
		},
		{
			name: "invalid - base domain name is not a domain",
			mutate: func(c *Config) {
				c.BaseDomainName = "not a domain"
			},
			wantErr: []string{"BaseDomainName", "must be a valid domain name"},
		},
		{
			name: "invalid - base domain name missing",
			mutate: func(c *Config) {
				c.BaseDomainName = ""
			},
			wantErr: []string{"BaseDomainName", "is required"},
		},
		{
			name: "invalid - qualifier over the length limit",
			mutate: func(c *Config) {
				c.Qualifier = "waytoolongqualifier"
			},
			wantErr: []string{"Qualifier", "exceeds maximum length"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := validator.New(validator.WithRequiredStructEnabled())
			validate.RegisterStructValidation(validateConfigRegionIdents, Config{})

			cfg := validConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := validate.Struct(cfg)

			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error but got nil")
			}

			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, formatValidationError(e))
			}
			formatted := strings.Join(msgs, "\n")

			for _, want := range tt.wantErr {
				if !strings.Contains(formatted, want) {
					t.Errorf("formatted error %q should contain %q", formatted, want)
				}
			}
		})
	}
}

// The Env field is metadata for environment lookups, not configuration input:
// validation must not require it and the lookup must fall back to the process
// environment when it is absent.
func TestConfigEnvFieldIsOptional(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateConfigRegionIdents, Config{})

	cfg := validConfig()
	cfg.Env = nil
	if err := validate.Struct(cfg); err != nil {
		t.Fatalf("config without Env should validate, got: %v", err)
	}

	if cfg.environ() == nil {
		t.Fatal("environ() must fall back to the process environment")
	}

	cfg.Env = MapEnviron(map[string]string{EnvProjectKey: "override"})
	if got := cfg.ProjectKey(); got != "override" {
		t.Errorf("ProjectKey() = %q, want the injected environment's %q", got, "override")
	}
}
