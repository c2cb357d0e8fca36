package tracing

// Span attribute keys used across store and cache spans.
const (
	AttrRecordID   = "record.id"
	AttrRecordType = "record.type"
	AttrRecordRows = "record.rows"

	AttrCacheKey = "cache.key"
	AttrCacheHit = "cache.hit"

	AttrErrorMessage = "error.message"
)

// Span name prefixes for consistent naming.
const (
	SpanPrefixStore = "store."
	SpanPrefixCache = "cache."
)
