package agcdkresolve

import (
	"github.com/advdv/agres/agcdkutil"
	"github.com/cockroachdb/errors"
)

// ErrUnknownReference marks import references the backend cannot interpret.
// It is also marked as a configuration error, see agcdkutil.ErrConfiguration.
var ErrUnknownReference = errors.New("unknown resource reference")

func unknownReference(namespace, ref string) error {
	return errors.Mark(errors.Mark(
		errors.Newf("cannot interpret %s reference %q", namespace, ref),
		ErrUnknownReference), agcdkutil.ErrConfiguration)
}

// ProvisioningAPI is the external collaborator that actually provisions,
// looks up, and imports resources. The resolver treats it as opaque: its
// errors propagate unchanged, without retries or wrapping.
//
// The production implementation is CDK-backed, see NewCDKAPI. Tests inject
// counting fakes.
type ProvisioningAPI interface {
	// CreateCertificate provisions a DNS-validated certificate for domain,
	// validated against the given hosted zone and tagged with roleTag.
	CreateCertificate(domain string, zone Handle, roleTag string) (Handle, error)

	// LookupZone resolves the hosted zone for the given zone name.
	LookupZone(zoneName string) (Handle, error)

	// ImportByReference wraps a raw identifier, ARN, or export name as a
	// handle for the given namespace. References it cannot interpret fail
	// with ErrUnknownReference.
	ImportByReference(namespace, ref string) (Handle, error)

	// RegisterExport publishes a value under an externally visible export
	// name so other scopes can import it.
	RegisterExport(name, value string) error

	// ResolveImportedValue reads a value another scope registered under the
	// given export name.
	ResolveImportedValue(name string) (string, error)
}
