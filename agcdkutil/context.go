package agcdkutil

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DNSDelegated checks the validation flag indicating the hosted zone has been
// delegated and is operational. Resources that depend on working DNS (e.g.
// DNS-validated certificates) are only created once this flag is set.
func DNSDelegated(scope constructs.Construct) bool {
	return boolContextFlag(scope, ConfigFromScope(scope).Prefix+"dns-delegated")
}

// boolContextFlag reads an optional boolean context flag. Context passed via
// the CLI arrives as a string, so both representations are accepted.
func boolContextFlag(scope constructs.Construct, key string) bool {
	val := scope.Node().TryGetContext(jsii.String(key))
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	default:
		return false
	}
}
