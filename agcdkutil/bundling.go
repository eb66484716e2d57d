package agcdkutil

import (
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/jsii-runtime-go"
)

// ReproducibleGoBundling returns bundling options for Go lambda functions
// that produce byte-identical binaries across machines and checkouts, so
// CloudFormation only redeploys functions whose code actually changed.
//
// The build flags strip the build id and paths from the binary. The stack
// helper acknowledges the resulting CDK build-flags warning, see
// NewStackFromConfig.
func ReproducibleGoBundling() *awscdklambdagoalpha.BundlingOptions {
	return &awscdklambdagoalpha.BundlingOptions{
		GoBuildFlags: jsii.Strings(`-ldflags "-s -w -buildid="`, "-trimpath"),
		Environment: &map[string]*string{
			"CGO_ENABLED": jsii.String("0"),
			"GOFLAGS":     jsii.String("-buildvcs=false"),
		},
		ForcedDockerBundling: jsii.Bool(false),
	}
}
