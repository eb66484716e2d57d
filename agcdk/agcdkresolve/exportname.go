package agcdkresolve

import (
	"fmt"

	"github.com/advdv/agres/agcdkutil"
	"github.com/iancoleman/strcase"
)

// ExportName derives the externally visible export name under which a
// provider scope registers a shared resource and consumer scopes import it.
// The derivation is the only coordination between the two: both sides compute
// the same name from the same inputs, there is no live lookup.
func ExportName(kind agcdkutil.EnvironmentKind, projectKey, namespace, domain string) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		string(kind), strcase.ToKebab(projectKey), namespace, Sanitize(domain))
}
