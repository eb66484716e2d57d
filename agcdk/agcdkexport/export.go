// Package agcdkexport wires values across independently deployed stacks via
// CloudFormation exports.
//
// A providing stack registers a value under an externally visible export
// name; any other stack in the same account and region imports it by that
// name. Export names are the whole contract: both sides derive them
// deterministically, see agcdkresolve.ExportName.
package agcdkexport

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/iancoleman/strcase"
)

// Register publishes value under the given export name on the stack of
// scope. The output's construct id is derived from the export name, so
// registering the same name twice on one stack fails synthesis (export names
// must be unique per stack anyway).
func Register(scope constructs.Construct, name, value string) {
	stack := awscdk.Stack_Of(scope)
	awscdk.NewCfnOutput(stack, jsii.String("Export"+strcase.ToCamel(name)), &awscdk.CfnOutputProps{
		Value:      jsii.String(value),
		ExportName: jsii.String(name),
	})
}

// ImportedValue reads the value another stack registered under the given
// export name. The result is an unresolved token until deploy time.
func ImportedValue(name string) string {
	return *awscdk.Fn_ImportValue(jsii.String(name))
}
