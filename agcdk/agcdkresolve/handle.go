package agcdkresolve

// Handle is an opaque reference to a provisioned resource. Two handles refer
// to the same resource iff their IDs are equal. Handles are created once and
// never mutated.
type Handle struct {
	// ID identifies the resource, typically an ARN or (for hosted zones)
	// the zone id. During synthesis this may be an unresolved token.
	ID string
	// Name is a human-readable display name, typically the domain.
	Name string
	// Resource optionally carries the underlying CDK construct, e.g. an
	// awscertificatemanager.ICertificate or awsroute53.IHostedZone. It is
	// nil for handles produced outside a CDK backend.
	Resource any
}

// IsZero reports whether the handle refers to nothing.
func (h Handle) IsZero() bool {
	return h.ID == ""
}

// Same reports whether both handles refer to the same resource.
func (h Handle) Same(other Handle) bool {
	return !h.IsZero() && h.ID == other.ID
}
