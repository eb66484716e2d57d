// Package agcdkhostname resolves the hostname a deployment serves traffic on.
//
// Call sites rarely spell out a full hostname: it is composed from an explicit
// value, a structured description, or environment variables, in that fixed
// order of precedence. The package also owns the syntactic validation of
// hostnames and subdomain labels; it never performs DNS lookups.
package agcdkhostname

import (
	"strings"

	"github.com/advdv/agres/agcdkutil"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// maxHostnameLen is the DNS limit on a full hostname.
const maxHostnameLen = 253

var validate = validator.New()

// IsHostname reports whether value is a syntactically valid DNS hostname:
// dot-separated labels of letters, digits and hyphens, 1-63 characters each,
// no leading or trailing hyphen per label, within the total DNS length limit.
// The empty string is not a valid hostname.
func IsHostname(value string) bool {
	if value == "" || len(value) > maxHostnameLen {
		return false
	}
	if validate.Var(value, "hostname_rfc1123") != nil {
		return false
	}

	// The RFC1123 check is lenient about hyphens at the end of a label.
	for label := range strings.SplitSeq(value, ".") {
		if strings.HasSuffix(label, "-") {
			return false
		}
	}

	return true
}

// IsSubdomain reports whether value is a valid single DNS label, i.e. a
// hostname without any dots.
func IsSubdomain(value string) bool {
	if strings.Contains(value, ".") {
		return false
	}
	return IsHostname(value)
}

// Merge joins a subdomain with a zone. An empty subdomain yields the zone
// apex. An empty zone cannot be merged and is a configuration error.
func Merge(subdomain, zone string) (string, error) {
	if zone == "" {
		return "", errors.Mark(
			errors.Newf("cannot merge subdomain %q: zone is empty", subdomain),
			agcdkutil.ErrConfiguration)
	}
	if subdomain == "" {
		return zone, nil
	}
	return subdomain + "." + zone, nil
}
