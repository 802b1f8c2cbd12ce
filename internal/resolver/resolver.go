package resolver

import (
	"strings"
	"sync"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// Fixer rewrites a relative link target that a frontend proxy stripped a
// path prefix from. See Resolver.LinkFixer.
type Fixer func(href, pagelink string) string

// Resolver resolves inputs against a compiled catalog.
//
// Each public operation keeps its own cache, keyed by that operation's
// input. Entries are created lazily and never evicted: the caches live as
// long as the Resolver, so callers with very large input spaces should
// scope a Resolver to the work that needs it rather than a whole process.
// Every cache is guarded independently; a race between two identical
// misses recomputes the same pure value, so last-writer-wins is safe.
type Resolver struct {
	catalog *catalog.Catalog

	projects memo[*model.Resolution]
	encodes  memo[encodeEntry]
	decodes  memo[decodeEntry]
	proxies  memo[*model.ProxyResolution]
	fixers   memo[Fixer]
}

// encodeEntry is a cached EncodeIDString result, including "absent".
type encodeEntry struct {
	id string
	ok bool
}

// decodeEntry is a cached DecodeIDString result. Only the raw URL string
// is cached; a fresh *url.URL is parsed from it on every hit because URL
// values are mutable and must not be shared between callers.
type decodeEntry struct {
	raw string
	ok  bool
}

// New creates a Resolver over c. The catalog must not be mutated for the
// lifetime of the resolver.
func New(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// memo is a mutex-guarded lookup table for one resolver operation.
// The stored value may itself represent absence (nil pointer, ok=false
// entry); the found flag only distinguishes "never computed".
type memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func (m *memo[V]) get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *memo[V]) put(key string, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string]V)
	}
	m.entries[key] = v
}

// firstSegments returns up to the first three "/"-delimited segments of
// input. Catalog name matching only ever looks at these: for a URL they
// are the scheme, the empty authority separator, and the hostname.
func firstSegments(input string) []string {
	segs := strings.SplitN(input, "/", 4)
	if len(segs) > 3 {
		segs = segs[:3]
	}
	return segs
}

// suffixesAny reports whether name is a suffix of any of the segments.
func suffixesAny(segments []string, name string) bool {
	for _, seg := range segments {
		if strings.HasSuffix(seg, name) {
			return true
		}
	}
	return false
}
