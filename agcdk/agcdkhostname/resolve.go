package agcdkhostname

import (
	"github.com/advdv/agres/agcdkutil"
	"github.com/cockroachdb/errors"
)

// Structured describes a hostname by its parts instead of a literal string.
type Structured struct {
	// Subdomain is the leading label, e.g. "api".
	Subdomain string
	// Domain is the zone the hostname lives under, e.g. "example.com".
	Domain string
	// Env qualifies the subdomain for non-production environments, e.g.
	// "dev1" turning "api" into "api-dev1".
	Env string
	// Component prepends an extra label, e.g. "ws" for "ws.api.example.com".
	Component string
}

// Hostname composes the structured parts into a hostname. Composition is
// total: absent optional parts are omitted. Only an empty Domain fails, via
// the Merge rule.
func (s Structured) Hostname() (string, error) {
	return Merge(s.label(), s.Domain)
}

// label builds the part left of the domain: component "." (subdomain "-" env),
// with absent segments omitted.
func (s Structured) label() string {
	label := s.Subdomain
	if s.Env != "" {
		if label == "" {
			label = s.Env
		} else {
			label += "-" + s.Env
		}
	}
	if s.Component != "" {
		if label == "" {
			label = s.Component
		} else {
			label = s.Component + "." + label
		}
	}
	return label
}

// Config drives Resolve. All fields are optional.
type Config struct {
	// Explicit is a fully spelled-out hostname. When set it wins over
	// everything else and is used verbatim (after syntax validation).
	Explicit string
	// Structured composes a hostname from parts, see Structured.
	Structured *Structured
	// Env overrides the environment lookup. Defaults to the process
	// environment when nil.
	Env agcdkutil.Environ
}

// Resolve produces the single hostname described by cfg, or the empty string
// when no source yields one. Absence is not an error; call sites that require
// a hostname fail on their own terms. Precedence:
//
//  1. the explicit value
//  2. the structured description
//  3. the fully-qualified hostname environment variable
//  4. the subdomain environment variable merged with the zone environment
//     variable (primary zone variable first, then the legacy fallback)
//
// Every resolved value is syntax-validated; failures carry
// agcdkutil.ErrConfiguration.
func Resolve(cfg Config) (string, error) {
	env := cfg.Env
	if env == nil {
		env = agcdkutil.DefaultEnviron
	}

	if cfg.Explicit != "" {
		return validated(cfg.Explicit, "explicit hostname")
	}

	// A structured description without a domain cannot compose anything and
	// falls through to the environment chain.
	if cfg.Structured != nil && cfg.Structured.Domain != "" {
		hostname, err := cfg.Structured.Hostname()
		if err != nil {
			return "", err
		}
		return validated(hostname, "structured hostname")
	}

	if hostname, ok := env(agcdkutil.EnvHostname); ok && hostname != "" {
		return validated(hostname, agcdkutil.EnvHostname)
	}

	subdomain, _ := env(agcdkutil.EnvSubdomain)
	zone, ok := env(agcdkutil.EnvZone)
	if !ok || zone == "" {
		zone, _ = env(agcdkutil.EnvParentZone)
	}
	if subdomain == "" && zone == "" {
		return "", nil
	}
	if subdomain != "" && !IsSubdomain(subdomain) {
		return "", errors.Mark(
			errors.Newf("%s is not a valid subdomain label: %q", agcdkutil.EnvSubdomain, subdomain),
			agcdkutil.ErrConfiguration)
	}

	hostname, err := Merge(subdomain, zone)
	if err != nil {
		return "", err
	}
	return validated(hostname, "environment hostname")
}

func validated(hostname, source string) (string, error) {
	if !IsHostname(hostname) {
		return "", errors.Mark(
			errors.Newf("%s is not a valid hostname: %q", source, hostname),
			agcdkutil.ErrConfiguration)
	}
	return hostname, nil
}
