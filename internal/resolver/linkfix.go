package resolver

import "strings"

// LinkFixer returns a function that reconstructs the path prefix a
// frontend proxy strips from relative links, or nil when no proxy applies.
//
// The hostname is taken as the third "/"-segment of rawURL, which assumes
// a scheme://host/... shape. A fixer only exists when the matched proxy's
// namePath carries extra fixed segments beyond the placeholder slot (more
// than 4 "/"-segments); flatter name paths leave relative links intact.
//
// The returned function is pure and safe for concurrent use. It splits
// pagelink into at most as many pieces as the namePath has segments, joins
// the pieces between the hostname and the final one, and prepends that
// prefix (with a leading "/") to href.
func (r *Resolver) LinkFixer(rawURL string) Fixer {
	segments := strings.SplitN(rawURL, "/", 4)
	if len(segments) < 3 {
		return nil
	}
	hostname := segments[2]

	if fix, found := r.fixers.get(hostname); found {
		return fix
	}

	fix := r.linkFixer(hostname)
	r.fixers.put(hostname, fix)
	return fix
}

// linkFixer computes an uncached fixer for hostname.
func (r *Resolver) linkFixer(hostname string) Fixer {
	for i := range r.catalog.Proxies {
		p := &r.catalog.Proxies[i]
		if !strings.HasSuffix(hostname, p.Name) {
			continue
		}

		splitLength := len(strings.Split(p.NamePath, "/"))
		if splitLength <= 4 {
			return nil
		}

		return func(href, pagelink string) string {
			pieces := strings.SplitN(pagelink, "/", splitLength)
			var prefix []string
			if len(pieces) > 4 {
				prefix = pieces[3 : len(pieces)-1]
			}
			return "/" + strings.Join(prefix, "/") + href
		}
	}
	return nil
}
