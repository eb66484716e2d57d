package agcdkutil

import "github.com/cockroachdb/errors"

// ErrConfiguration marks errors caused by invalid or missing configuration
// (context values, environment variables, props). Callers distinguish these
// from provisioning failures with errors.Is; provisioning failures are never
// marked and propagate unchanged.
var ErrConfiguration = errors.New("configuration error")
