package agcdkresolve

import (
	"github.com/advdv/agres/agcdkutil"
	"github.com/cockroachdb/errors"
)

// mode is the normalized resolution mode, see normalize.
type mode int

const (
	// modeDisabled skips resolution entirely: no resource, no side effects.
	modeDisabled mode = iota
	// modeProvided returns the caller's handle unchanged, uncached.
	modeProvided
	// modeImport wraps a reference string as a handle, uncached.
	modeImport
	// modeCreate consults the cache and provisions on a miss.
	modeCreate
)

// request is the canonical resolution request every props shape normalizes
// into, so the resolver branches on one tagged value instead of probing
// fields throughout.
type request struct {
	mode      mode
	provided  Handle
	reference string
	domain    string
	zone      Handle
	roleTag   string
	share     *ShareProps
}

// ShareProps enables the cross-scope consumer/provider indirection on the
// certificate path.
type ShareProps struct {
	// Kind classifies the current environment. Consumer kinds (personal,
	// ephemeral) import the shared certificate instead of provisioning.
	Kind agcdkutil.EnvironmentKind
	// ProviderKind names the environment kind whose scope provides the
	// shared certificate. Export names are derived from it so consumers
	// and the provider agree. Defaults to sandbox.
	ProviderKind agcdkutil.EnvironmentKind
	// ProjectKey scopes export names to one project.
	ProjectKey string
}

func (p *ShareProps) providerKind() agcdkutil.EnvironmentKind {
	if p.ProviderKind != "" {
		return p.ProviderKind
	}
	return agcdkutil.EnvironmentSandbox
}

// CertificateProps configures certificate resolution. The zero value is the
// default mode: create a certificate for DomainName, shared per scope.
type CertificateProps struct {
	// Disabled skips certificate resolution entirely.
	Disabled bool
	// Certificate passes an already-provisioned handle through unchanged.
	Certificate Handle
	// CertificateRef imports an existing certificate by ARN or export name.
	CertificateRef string
	// DomainName is the domain to create the certificate for. Required in
	// the default mode.
	DomainName string
	// Zone is the hosted zone the certificate is DNS-validated against.
	// Required when a certificate is actually created.
	Zone Handle
	// RoleTag tags the created certificate with its role in the system.
	RoleTag string
	// Share enables the consumer/provider indirection, see ShareProps.
	Share *ShareProps
}

// ZoneProps configures hosted zone resolution. The zero value is invalid: a
// zone name, handle, or reference is required.
type ZoneProps struct {
	// Disabled skips zone resolution entirely.
	Disabled bool
	// Zone passes an already-provisioned handle through unchanged.
	Zone Handle
	// ZoneRef imports an existing hosted zone by id.
	ZoneRef string
	// ZoneName is the zone to look up. Required in the default mode.
	ZoneName string
}

// Resolver applies the resolution policy for one resolution scope. It owns
// the scope's caches and delegates provisioning to the API. Construct one
// per scope, or use the scope-keyed functions in this package.
type Resolver struct {
	api          ProvisioningAPI
	certificates *Cache
	zones        *Cache
}

// NewResolver creates a Resolver with empty caches.
func NewResolver(api ProvisioningAPI) *Resolver {
	return &Resolver{
		api:          api,
		certificates: NewCache(),
		zones:        NewCache(),
	}
}

// Certificates exposes the certificate cache, e.g. for test resets.
func (r *Resolver) Certificates() *Cache { return r.certificates }

// Zones exposes the hosted zone cache, e.g. for test resets.
func (r *Resolver) Zones() *Cache { return r.zones }

// Certificate resolves a certificate handle per props. The second return is
// false when resolution is disabled. For a fixed scope and domain the default
// mode provisions at most once; later calls return the cached handle.
func (r *Resolver) Certificate(props CertificateProps) (Handle, bool, error) {
	req, err := normalizeCertificate(props)
	if err != nil {
		return Handle{}, false, err
	}

	switch req.mode {
	case modeDisabled:
		return Handle{}, false, nil
	case modeProvided:
		return req.provided, true, nil
	case modeImport:
		handle, err := r.api.ImportByReference(NamespaceCertificate, req.reference)
		if err != nil {
			return Handle{}, false, err
		}
		return handle, true, nil
	}

	if req.domain == "" {
		return Handle{}, false, errors.Mark(
			errors.New("certificate requested but no domain name resolved"),
			agcdkutil.ErrConfiguration)
	}

	// Consumer environments never provision: they import the certificate a
	// provider scope registered under the deterministic export name.
	if req.share != nil && req.share.Kind.IsConsumer() {
		name := ExportName(req.share.providerKind(), req.share.ProjectKey,
			NamespaceCertificate, req.domain)
		handle, err := r.api.ImportByReference(NamespaceCertificate, name)
		if err != nil {
			return Handle{}, false, err
		}
		return handle, true, nil
	}

	if existing, ok := r.certificates.Get(NamespaceCertificate, req.domain); ok {
		return existing, true, nil
	}

	if req.zone.IsZero() {
		return Handle{}, false, errors.Mark(
			errors.Newf("certificate for %q requires a hosted zone for DNS validation", req.domain),
			agcdkutil.ErrConfiguration)
	}

	handle, err := r.api.CreateCertificate(req.domain, req.zone, req.roleTag)
	if err != nil {
		return Handle{}, false, err
	}
	r.certificates.Put(NamespaceCertificate, req.domain, handle)

	if req.share != nil {
		name := ExportName(req.share.providerKind(), req.share.ProjectKey,
			NamespaceCertificate, req.domain)
		if err := r.api.RegisterExport(name, handle.ID); err != nil {
			return Handle{}, false, err
		}
	}

	return handle, true, nil
}

// HostedZone resolves a hosted zone handle per props. The second return is
// false when resolution is disabled.
func (r *Resolver) HostedZone(props ZoneProps) (Handle, bool, error) {
	req, err := normalizeZone(props)
	if err != nil {
		return Handle{}, false, err
	}

	switch req.mode {
	case modeDisabled:
		return Handle{}, false, nil
	case modeProvided:
		return req.provided, true, nil
	case modeImport:
		handle, err := r.api.ImportByReference(NamespaceZone, req.reference)
		if err != nil {
			return Handle{}, false, err
		}
		return handle, true, nil
	}

	if req.domain == "" {
		return Handle{}, false, errors.Mark(
			errors.New("hosted zone requested but no zone name resolved"),
			agcdkutil.ErrConfiguration)
	}

	if existing, ok := r.zones.Get(NamespaceZone, req.domain); ok {
		return existing, true, nil
	}

	handle, err := r.api.LookupZone(req.domain)
	if err != nil {
		return Handle{}, false, err
	}
	r.zones.Put(NamespaceZone, req.domain, handle)

	return handle, true, nil
}

// normalizeCertificate maps the props union onto one canonical request,
// rejecting ambiguous combinations upfront.
func normalizeCertificate(props CertificateProps) (request, error) {
	if props.Disabled {
		if !props.Certificate.IsZero() || props.CertificateRef != "" {
			return request{}, errors.Mark(
				errors.New("certificate resolution is disabled but a certificate or reference was given"),
				agcdkutil.ErrConfiguration)
		}
		return request{mode: modeDisabled}, nil
	}
	if !props.Certificate.IsZero() {
		if props.CertificateRef != "" {
			return request{}, errors.Mark(
				errors.New("pass either a certificate handle or a certificate reference, not both"),
				agcdkutil.ErrConfiguration)
		}
		return request{mode: modeProvided, provided: props.Certificate}, nil
	}
	if props.CertificateRef != "" {
		return request{mode: modeImport, reference: props.CertificateRef}, nil
	}
	return request{
		mode:    modeCreate,
		domain:  props.DomainName,
		zone:    props.Zone,
		roleTag: props.RoleTag,
		share:   props.Share,
	}, nil
}

// normalizeZone is the zone-shaped counterpart of normalizeCertificate.
func normalizeZone(props ZoneProps) (request, error) {
	if props.Disabled {
		if !props.Zone.IsZero() || props.ZoneRef != "" {
			return request{}, errors.Mark(
				errors.New("zone resolution is disabled but a zone or reference was given"),
				agcdkutil.ErrConfiguration)
		}
		return request{mode: modeDisabled}, nil
	}
	if !props.Zone.IsZero() {
		if props.ZoneRef != "" {
			return request{}, errors.Mark(
				errors.New("pass either a zone handle or a zone reference, not both"),
				agcdkutil.ErrConfiguration)
		}
		return request{mode: modeProvided, provided: props.Zone}, nil
	}
	if props.ZoneRef != "" {
		return request{mode: modeImport, reference: props.ZoneRef}, nil
	}
	return request{mode: modeCreate, domain: props.ZoneName}, nil
}
