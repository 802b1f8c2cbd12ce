package resolver

import (
	"fmt"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// ResolveFrontendProxy resolves input against the frontend-proxy catalog.
//
// Matching works like ResolveWikiProject (first-three-segments suffix
// match, first entry wins), but a proxy's own regex alone decides the
// match; there is no article/script alternation. On match all three path
// templates are expanded with the pattern's capture groups. A nil result
// with a nil error means no match; results are deep copies.
func (r *Resolver) ResolveFrontendProxy(input string) (*model.ProxyResolution, error) {
	if res, ok := r.proxies.get(input); ok {
		return res.Clone(), nil
	}

	res, err := r.resolveProxy(input)
	if err != nil {
		return nil, err
	}
	r.proxies.put(input, res)
	return res.Clone(), nil
}

// resolveProxy computes an uncached proxy resolution.
func (r *Resolver) resolveProxy(input string) (*model.ProxyResolution, error) {
	segments := firstSegments(input)

	var p *catalog.Proxy
	for i := range r.catalog.Proxies {
		if suffixesAny(segments, r.catalog.Proxies[i].Name) {
			p = &r.catalog.Proxies[i]
			break
		}
	}
	if p == nil {
		return nil, nil
	}

	m := p.Pattern.FindStringSubmatch(input)
	if m == nil {
		return nil, nil
	}

	res := &model.ProxyResolution{FrontendProxy: p.FrontendProxy.Clone()}
	for _, field := range []struct {
		tmpl string
		dst  *string
	}{
		{p.NamePath, &res.FullNamePath},
		{p.ArticlePath, &res.FullArticlePath},
		{p.ScriptPath, &res.FullScriptPath},
	} {
		out, err := catalog.ExpandTemplate(field.tmpl, m[1:])
		if err != nil {
			return nil, fmt.Errorf("frontend proxy %q: %w", p.Name, err)
		}
		*field.dst = out
	}

	return res, nil
}
