// Package agcdkcert provides a reusable ACM certificate construct for
// multi-region CDK deployments.
//
// The certificate uses DNS validation via the provided Route53 hosted zone.
// This construct should only be created after DNS has been validated and is
// operational (i.e., after SharedBase validation is complete).
//
// Certificates are resolved through the shared resource mechanism: within a
// stack, every call site asking for the same domain observes one certificate.
// With Shared set, consumer environments (personal, ephemeral) import the
// certificate a provider scope exported instead of issuing their own.
package agcdkcert

import (
	"github.com/advdv/agres/agcdk/agcdkhostname"
	"github.com/advdv/agres/agcdk/agcdkresolve"
	"github.com/advdv/agres/agcdkutil"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// defaultRoleTag tags certificates created by this construct.
const defaultRoleTag = "wildcard-certificate"

// Certificate provides access to an ACM certificate.
type Certificate interface {
	// WildcardCertificate returns the resolved ACM certificate.
	// Use this for CloudFront, API Gateway, ALB, etc. Nil when resolution
	// was disabled.
	WildcardCertificate() awscertificatemanager.ICertificate

	// Handle returns the resolved certificate handle for use with
	// agcdkresolve. Zero when resolution was disabled.
	Handle() agcdkresolve.Handle
}

// Props configures the Cert construct.
type Props struct {
	// HostedZone is the Route53 hosted zone used for DNS validation.
	// Required unless the certificate is disabled, imported, or resolved
	// in a consumer environment.
	HostedZone awsroute53.IHostedZone

	// Hostname configures which domain the certificate covers. When it
	// resolves to nothing the certificate covers "*.{zoneName}".
	Hostname agcdkhostname.Config

	// Disabled skips certificate resolution entirely.
	Disabled bool

	// CertificateArn imports an existing certificate instead of creating
	// one. Optional.
	CertificateArn string

	// Shared enables the cross-app consumer/provider indirection: provider
	// environments export the certificate ARN, consumer environments
	// import it.
	Shared bool

	// RoleTag overrides the role tag on the created certificate.
	RoleTag string
}

type cert struct {
	handle agcdkresolve.Handle
}

// New creates a Certificate construct resolving an ACM certificate.
//
// The domain is resolved per the hostname precedence rules, falling back to
// the wildcard of the validation zone. DNS validation requires the hosted
// zone to be properly delegated and operational.
//
// Each region gets its own certificate since ACM certificates are regional.
// The certificate validates against the same Route53 hosted zone.
func New(scope constructs.Construct, props Props) Certificate {
	scope = constructs.NewConstruct(scope, jsii.String("Cert"))
	con := &cert{}

	domain, err := agcdkhostname.Resolve(props.Hostname)
	if err != nil {
		panic(err)
	}
	if domain == "" && props.HostedZone != nil {
		domain = "*." + *props.HostedZone.ZoneName()
	}

	var zone agcdkresolve.Handle
	if props.HostedZone != nil {
		zone = agcdkresolve.Handle{
			ID:       *props.HostedZone.HostedZoneId(),
			Name:     *props.HostedZone.ZoneName(),
			Resource: props.HostedZone,
		}
	}

	var share *agcdkresolve.ShareProps
	if props.Shared {
		cfg := agcdkutil.ConfigFromScope(scope)
		share = &agcdkresolve.ShareProps{
			Kind:       cfg.EnvironmentKind(),
			ProjectKey: cfg.ProjectKey(),
		}
	}

	roleTag := props.RoleTag
	if roleTag == "" {
		roleTag = defaultRoleTag
	}

	handle, ok, err := agcdkresolve.ResolveCertificate(scope, agcdkresolve.CertificateProps{
		Disabled:       props.Disabled,
		CertificateRef: props.CertificateArn,
		DomainName:     domain,
		Zone:           zone,
		RoleTag:        roleTag,
		Share:          share,
	})
	if err != nil {
		panic(err)
	}
	if ok {
		con.handle = handle
	}

	return con
}

func (c *cert) WildcardCertificate() awscertificatemanager.ICertificate {
	if c.handle.IsZero() {
		return nil
	}
	certificate, ok := c.handle.Resource.(awscertificatemanager.ICertificate)
	if !ok {
		panic("agcdkcert: certificate handle does not wrap an ACM certificate")
	}
	return certificate
}

func (c *cert) Handle() agcdkresolve.Handle {
	return c.handle
}
