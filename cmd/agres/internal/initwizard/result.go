package initwizard

import "github.com/advdv/agres/cmd/agres/internal/config"

// Result carries the answers of the init wizard. Everything except the
// environment kind ends up in the project configuration file; the kind is
// per-deployment state and is communicated via the environment instead.
type Result struct {
	ProjectKey       string
	BaseDomainName   string
	EnvironmentKind  string
	PrimaryRegion    string
	SecondaryRegions []string
}

func DefaultResult(defaultKey string) Result {
	return Result{
		ProjectKey:       defaultKey,
		BaseDomainName:   "example.com",
		EnvironmentKind:  "sandbox",
		PrimaryRegion:    "eu-central-1",
		SecondaryRegions: []string{},
	}
}

// Config maps the answers onto the project configuration written to
// .agres.yml.
func (r Result) Config() config.InnerConfig {
	cfg := config.Default(r.ProjectKey, r.BaseDomainName)
	cfg.PrimaryRegion = r.PrimaryRegion
	cfg.SecondaryRegions = r.SecondaryRegions
	return cfg
}
