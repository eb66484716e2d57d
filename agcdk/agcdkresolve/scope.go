package agcdkresolve

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// resolvers holds one Resolver per resolution scope (the stack of the given
// construct), keyed by the stack's construct-tree address. The registry is
// process-wide; scopes never share entries because each stack gets its own
// Resolver with its own caches. Synthesis runs single-threaded, so plain map
// access suffices. Tests that synthesize multiple apps in one process reset
// between runs via the Clear functions.
var resolvers = map[string]*Resolver{}

func resolverFor(scope constructs.Construct) *Resolver {
	key := scopeKey(scope)
	res, ok := resolvers[key]
	if !ok {
		res = NewResolver(NewCDKAPI(awscdk.Stack_Of(scope)))
		resolvers[key] = res
	}
	return res
}

func scopeKey(scope constructs.Construct) string {
	return *awscdk.Stack_Of(scope).Node().Addr()
}

// ResolveCertificate resolves a certificate handle for the resolution scope
// of the given construct, provisioning at most once per domain within that
// scope. See Resolver.Certificate.
func ResolveCertificate(scope constructs.Construct, props CertificateProps) (Handle, bool, error) {
	return resolverFor(scope).Certificate(props)
}

// ResolveHostedZone resolves a hosted zone handle for the resolution scope of
// the given construct, looking up at most once per zone name within that
// scope. See Resolver.HostedZone.
func ResolveHostedZone(scope constructs.Construct, props ZoneProps) (Handle, bool, error) {
	return resolverFor(scope).HostedZone(props)
}

// ClearCertificateCache resets the certificate cache of the given scope.
// Test-only hook for isolating synthesis runs that share process state.
func ClearCertificateCache(scope constructs.Construct) {
	if res, ok := resolvers[scopeKey(scope)]; ok {
		res.certificates.Clear()
	}
}

// ClearZoneCache resets the hosted zone cache of the given scope. Test-only
// hook for isolating synthesis runs that share process state.
func ClearZoneCache(scope constructs.Construct) {
	if res, ok := resolvers[scopeKey(scope)]; ok {
		res.zones.Clear()
	}
}
