package agcdkresolve

import (
	"strings"

	"github.com/advdv/agres/agcdk/agcdkexport"
	"github.com/advdv/agres/agcdkutil"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
)

// roleTagName is the tag key carrying a resource's role in the system.
const roleTagName = "agres:role"

type cdkAPI struct {
	scope constructs.Construct

	// imported memoizes handles per (namespace, reference) so repeated
	// imports reuse one construct id. This is not the shared resolution
	// cache: a reference already uniquely determines its result.
	imported map[string]Handle
}

// NewCDKAPI returns the production ProvisioningAPI, creating and importing
// resources as CDK constructs under the given scope.
func NewCDKAPI(scope constructs.Construct) ProvisioningAPI {
	return &cdkAPI{scope: scope, imported: map[string]Handle{}}
}

func (a *cdkAPI) CreateCertificate(domain string, zone Handle, roleTag string) (Handle, error) {
	hostedZone, ok := zone.Resource.(awsroute53.IHostedZone)
	if !ok {
		return Handle{}, errors.Mark(
			errors.Newf("zone handle %q does not wrap a Route53 hosted zone", zone.ID),
			agcdkutil.ErrConfiguration)
	}

	cert := awscertificatemanager.NewCertificate(a.scope,
		jsii.String("Certificate"+strcase.ToCamel(Sanitize(domain))),
		&awscertificatemanager.CertificateProps{
			DomainName: jsii.String(domain),
			Validation: awscertificatemanager.CertificateValidation_FromDns(hostedZone),
		})

	if roleTag != "" {
		awscdk.Tags_Of(cert).Add(jsii.String(roleTagName), jsii.String(roleTag), nil)
	}

	return Handle{ID: *cert.CertificateArn(), Name: domain, Resource: cert}, nil
}

func (a *cdkAPI) LookupZone(zoneName string) (Handle, error) {
	zone := awsroute53.HostedZone_FromLookup(a.scope,
		jsii.String("Zone"+strcase.ToCamel(Sanitize(zoneName))),
		&awsroute53.HostedZoneProviderProps{
			DomainName: jsii.String(zoneName),
		})

	return Handle{ID: *zone.HostedZoneId(), Name: *zone.ZoneName(), Resource: zone}, nil
}

func (a *cdkAPI) ImportByReference(namespace, ref string) (Handle, error) {
	memo := namespace + ":" + ref
	if handle, ok := a.imported[memo]; ok {
		return handle, nil
	}

	var handle Handle
	var err error
	switch namespace {
	case NamespaceCertificate:
		handle, err = a.importCertificate(ref)
	case NamespaceZone:
		handle, err = a.importZone(ref)
	default:
		err = unknownReference(namespace, ref)
	}
	if err != nil {
		return Handle{}, err
	}

	a.imported[memo] = handle
	return handle, nil
}

// importCertificate accepts a certificate ARN or an export name registered by
// a providing scope.
func (a *cdkAPI) importCertificate(ref string) (Handle, error) {
	arn := ref
	if !strings.HasPrefix(ref, "arn:") {
		var err error
		arn, err = a.ResolveImportedValue(ref)
		if err != nil {
			return Handle{}, err
		}
	}

	cert := awscertificatemanager.Certificate_FromCertificateArn(a.scope,
		jsii.String("ImportedCertificate"+strcase.ToCamel(Sanitize(ref))),
		jsii.String(arn))

	return Handle{ID: arn, Name: ref, Resource: cert}, nil
}

// importZone accepts a hosted zone id, bare or in its "/hostedzone/Z..."
// form. Anything else is an unknown reference.
func (a *cdkAPI) importZone(ref string) (Handle, error) {
	id := strings.TrimPrefix(ref, "/hostedzone/")
	if !isZoneID(id) {
		return Handle{}, unknownReference(NamespaceZone, ref)
	}

	zone := awsroute53.HostedZone_FromHostedZoneId(a.scope,
		jsii.String("ImportedZone"+strcase.ToCamel(Sanitize(id))), jsii.String(id))

	return Handle{ID: id, Name: ref, Resource: zone}, nil
}

func (a *cdkAPI) RegisterExport(name, value string) error {
	agcdkexport.Register(a.scope, name, value)
	return nil
}

func (a *cdkAPI) ResolveImportedValue(name string) (string, error) {
	return agcdkexport.ImportedValue(name), nil
}

func isZoneID(id string) bool {
	if len(id) < 2 || id[0] != 'Z' {
		return false
	}
	for _, c := range id[1:] {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
