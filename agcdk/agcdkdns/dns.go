// Package agcdkdns provides the Route53 hosted zone construct for multi-region
// CDK deployments.
//
// The hosted zone is resolved through the shared resource mechanism: however
// many constructs in a stack need the zone, it is looked up once and every
// caller observes the same handle. An existing zone can be imported by id
// instead.
package agcdkdns

import (
	"github.com/advdv/agres/agcdk/agcdkresolve"
	"github.com/advdv/agres/agcdkutil"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DNS provides access to the hosted zone.
type DNS interface {
	// HostedZone returns the Route53 hosted zone.
	HostedZone() awsroute53.IHostedZone

	// Zone returns the resolved zone handle for use with agcdkresolve.
	Zone() agcdkresolve.Handle

	// ZoneName returns the DNS name of the zone.
	ZoneName() string
}

// Props configures the DNS construct.
type Props struct {
	// ZoneName overrides the zone to resolve.
	// Optional: defaults to the base domain name from config.
	ZoneName string

	// ZoneID imports an existing hosted zone by id instead of looking
	// one up. Optional.
	ZoneID string
}

type dns struct {
	zone     agcdkresolve.Handle
	zoneName string
}

// New creates a DNS construct resolving the hosted zone for this stack.
//
// The zone is shared per stack: repeated resolutions of the same zone name
// return the identical handle without additional lookups.
func New(scope constructs.Construct, props Props) DNS {
	scope = constructs.NewConstruct(scope, jsii.String("DNS"))
	con := &dns{zoneName: props.ZoneName}

	if con.zoneName == "" && props.ZoneID == "" {
		con.zoneName = agcdkutil.BaseDomainName(scope)
	}

	zone, ok, err := agcdkresolve.ResolveHostedZone(scope, agcdkresolve.ZoneProps{
		ZoneName: con.zoneName,
		ZoneRef:  props.ZoneID,
	})
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("agcdkdns: hosted zone resolution returned no zone")
	}

	con.zone = zone
	if con.zoneName == "" {
		con.zoneName = zone.Name
	}

	return con
}

func (d *dns) HostedZone() awsroute53.IHostedZone {
	zone, ok := d.zone.Resource.(awsroute53.IHostedZone)
	if !ok {
		panic("agcdkdns: zone handle does not wrap a Route53 hosted zone")
	}
	return zone
}

func (d *dns) Zone() agcdkresolve.Handle {
	return d.zone
}

func (d *dns) ZoneName() string {
	return d.zoneName
}
