package initwizard

import (
	"github.com/advdv/agres/agcdk/agcdkhostname"
	"github.com/advdv/agres/agcdkutil"
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

type FormBuilder interface {
	Build(defaultKey string, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaultKey string, result *Result) *huh.Form {
	*result = DefaultResult(defaultKey)
	return huh.NewForm(
		huh.NewGroup(
			b.projectKeyInput(&result.ProjectKey),
			b.baseDomainInput(&result.BaseDomainName),
			b.environmentKindSelect(&result.EnvironmentKind),
			b.primaryRegionSelect(&result.PrimaryRegion),
			b.secondaryRegionsSelect(&result.PrimaryRegion, &result.SecondaryRegions),
		),
	)
}

func (b *formBuilder) projectKeyInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Project key").
		Description("Scopes cross-stack export names; consumers and providers of shared resources must agree on it").
		Value(value).
		Validate(ValidateProjectKey)
}

func (b *formBuilder) baseDomainInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Base domain name").
		Description("DNS zone your deployments live under, e.g. example.com").
		Value(value).
		Validate(ValidateBaseDomainName)
}

func (b *formBuilder) environmentKindSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Environment kind").
		Description("Personal and ephemeral environments import shared certificates instead of issuing their own").
		Options(huh.NewOptions(
			string(agcdkutil.EnvironmentSandbox),
			string(agcdkutil.EnvironmentProduction),
			string(agcdkutil.EnvironmentPersonal),
			string(agcdkutil.EnvironmentEphemeral),
		)...).
		Value(value)
}

func (b *formBuilder) primaryRegionSelect(value *string) *huh.Select[string] {
	regions := agcdkutil.AllKnownRegions()
	return huh.NewSelect[string]().
		Title("Primary AWS region").
		Description("Main region for deployments").
		Options(huh.NewOptions(regions...)...).
		Value(value)
}

func (b *formBuilder) secondaryRegionsSelect(primaryRegion *string, value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title("Secondary AWS regions").
		Description("Additional regions for multi-region deployments (optional)").
		OptionsFunc(func() []huh.Option[string] {
			var opts []huh.Option[string]
			for _, r := range agcdkutil.AllKnownRegions() {
				if r != *primaryRegion {
					opts = append(opts, huh.NewOption(r, r))
				}
			}
			return opts
		}, primaryRegion).
		Value(value)
}

func ValidateProjectKey(s string) error {
	if s == "" {
		return errors.New("project key is required")
	}
	if len(s) > 20 {
		return errors.New("project key must be 20 characters or less")
	}
	for _, c := range s {
		if !IsValidKeyChar(c) {
			return errors.Newf("invalid character %q: use lowercase letters, numbers, and hyphens only", c)
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return errors.New("project key cannot start or end with a hyphen")
	}
	return nil
}

func IsValidKeyChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

func ValidateBaseDomainName(s string) error {
	if !agcdkhostname.IsHostname(s) {
		return errors.Newf("%q is not a valid domain name", s)
	}
	return nil
}
