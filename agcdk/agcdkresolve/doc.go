// Package agcdkresolve lets unrelated call sites share expensive provisioned
// resources - ACM certificates and Route53 hosted zones - instead of each
// creating its own copy.
//
// Within one stack (the resolution scope), the first call site that resolves
// a given domain provisions the resource; every later call site observes the
// identical handle, regardless of construction order. Call sites can also
// disable resolution, pass an already-provisioned handle through, or import
// an existing resource by ARN or export name; those paths bypass the shared
// cache entirely.
//
// The certificate path additionally supports a consumer/provider split:
// provider environments register the certificate ARN under a deterministic
// CloudFormation export name, and consumer environments (personal, ephemeral)
// import by that name instead of provisioning, so independently synthesized
// apps share one certificate without a live lookup.
package agcdkresolve
