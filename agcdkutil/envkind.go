package agcdkutil

import "os"

// Environment variable names read by this module and by the hostname and
// resource resolvers. They are fixed so independently synthesized apps agree
// on them without configuration.
const (
	// EnvHostname holds a fully-qualified hostname, overriding composition.
	EnvHostname = "AGRES_HOSTNAME"
	// EnvSubdomain holds a single-label subdomain prefix.
	EnvSubdomain = "AGRES_SUBDOMAIN"
	// EnvZone holds the DNS zone the subdomain is merged with.
	EnvZone = "AGRES_ZONE"
	// EnvParentZone is the legacy fallback for EnvZone.
	EnvParentZone = "AGRES_PARENT_ZONE"
	// EnvKind classifies the environment, see EnvironmentKind.
	EnvKind = "AGRES_ENV_KIND"
	// EnvEphemeral and EnvPersonal are legacy boolean flags that both mean
	// "consumer environment". EnvKind wins when set; between the two flags,
	// EnvEphemeral wins.
	EnvEphemeral = "AGRES_EPHEMERAL"
	EnvPersonal  = "AGRES_PERSONAL"
	// EnvProjectKey overrides the qualifier in cross-stack export names.
	EnvProjectKey = "AGRES_PROJECT_KEY"
)

// Environ looks up an environment variable, reporting whether it was set.
// It exists so tests can resolve against a synthetic environment instead of
// mutating the process environment.
type Environ func(key string) (string, bool)

// DefaultEnviron reads from the process environment.
func DefaultEnviron(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnviron returns an Environ backed by a fixed map, for tests.
func MapEnviron(env map[string]string) Environ {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// EnvironmentKind classifies an environment for the consumer/provider
// resource-sharing roles. Consumer environments (personal, ephemeral) import
// shared resources created by provider environments (sandbox, production)
// instead of provisioning their own.
type EnvironmentKind string

const (
	EnvironmentPersonal   EnvironmentKind = "personal"
	EnvironmentEphemeral  EnvironmentKind = "ephemeral"
	EnvironmentSandbox    EnvironmentKind = "sandbox"
	EnvironmentProduction EnvironmentKind = "production"
)

// IsConsumer reports whether this kind imports shared resources rather than
// provisioning them.
func (k EnvironmentKind) IsConsumer() bool {
	return k == EnvironmentPersonal || k == EnvironmentEphemeral
}

// ClassifyEnvironment determines the environment kind from the environment.
// An explicit kind variable wins. The legacy ephemeral flag wins over the
// legacy personal flag; both classify as consumer environments, so an
// inconsistent combination cannot flip the consumer/provider role. Without
// any of these, the environment is a sandbox.
func ClassifyEnvironment(env Environ) EnvironmentKind {
	if env == nil {
		env = DefaultEnviron
	}

	if v, ok := env(EnvKind); ok && v != "" {
		switch EnvironmentKind(v) {
		case EnvironmentPersonal, EnvironmentEphemeral, EnvironmentSandbox, EnvironmentProduction:
			return EnvironmentKind(v)
		}
	}

	if isEnvFlagSet(env, EnvEphemeral) {
		return EnvironmentEphemeral
	}
	if isEnvFlagSet(env, EnvPersonal) {
		return EnvironmentPersonal
	}

	return EnvironmentSandbox
}

func isEnvFlagSet(env Environ, key string) bool {
	v, ok := env(key)
	if !ok {
		return false
	}
	switch v {
	case "", "0", "false", "no":
		return false
	}
	return true
}
