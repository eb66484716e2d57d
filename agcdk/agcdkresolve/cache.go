package agcdkresolve

import "strings"

// Namespaces distinguishing resource kinds sharing the cache, so identical
// domains in different namespaces never collide.
const (
	NamespaceCertificate = "certificate"
	NamespaceZone        = "zone"
)

// Sanitize normalizes a domain for use in cache keys and resource names:
// lower-cased, trailing dot trimmed, a wildcard label spelled out, dots
// replaced with hyphens. Note that this maps "Api.Example.com" and a
// pre-sanitized "api-example-com" to the same value; the collision is
// intended idempotence, not an accident.
func Sanitize(domain string) string {
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	domain = strings.ReplaceAll(domain, "*", "wildcard")
	return strings.ReplaceAll(domain, ".", "-")
}

// Key derives the canonical cache key for a namespace and domain. The key is
// also safe to reuse as a human-readable identifier, e.g. for naming the
// created resource. See Sanitize for the collision semantics.
func Key(namespace, domain string) string {
	return namespace + ":" + Sanitize(domain)
}

// Cache maps cache keys to handles for one resolution scope. It is built for
// the single-threaded synthesis pass: plain map operations, no locking, no
// expiry. Clear is the only supported reset and exists for test isolation
// between synthesis runs that reuse process-wide state.
type Cache struct {
	entries map[string]Handle
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]Handle{}}
}

// Get returns the handle cached under (namespace, domain), if any.
func (c *Cache) Get(namespace, domain string) (Handle, bool) {
	h, ok := c.entries[Key(namespace, domain)]
	return h, ok
}

// Put stores a handle under (namespace, domain), silently overwriting.
// Callers enforce the create-once invariant by calling Get first.
func (c *Cache) Put(namespace, domain string, h Handle) {
	c.entries[Key(namespace, domain)] = h
}

// Clear removes all entries.
func (c *Cache) Clear() {
	clear(c.entries)
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	return len(c.entries)
}
