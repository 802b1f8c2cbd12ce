package resolver

import (
	"fmt"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// ResolveWikiProject resolves input against the project catalog.
//
// The first catalog entry whose name suffix-matches one of the input's
// first three "/"-segments is selected; its path pattern then has to match
// the input or the result is absent. A nil result with a nil error means
// no match. The returned resolution is a deep copy on every call, cached
// or not, so mutating it never affects the catalog or other callers.
func (r *Resolver) ResolveWikiProject(input string) (*model.Resolution, error) {
	if res, ok := r.projects.get(input); ok {
		return res.Clone(), nil
	}

	res, err := r.resolveProject(input)
	if err != nil {
		return nil, err
	}
	r.projects.put(input, res)
	return res.Clone(), nil
}

// resolveProject computes an uncached project resolution.
func (r *Resolver) resolveProject(input string) (*model.Resolution, error) {
	p := r.matchProject(input)
	if p == nil {
		return nil, nil
	}

	m := p.PathPattern.FindStringSubmatch(input)
	if m == nil {
		return nil, nil
	}
	hostname := m[1]

	articlePath := p.ArticleLiteral
	scriptPath := p.ScriptPath
	if p.RegexPaths {
		var err error
		// $n references capture group n of the path pattern match.
		articlePath, err = catalog.ExpandTemplate(p.ArticlePath, m[1:])
		if err != nil {
			return nil, fmt.Errorf("project %q article path: %w", p.Name, err)
		}
		scriptPath, err = catalog.ExpandTemplate(p.ScriptPath, m[1:])
		if err != nil {
			return nil, fmt.Errorf("project %q script path: %w", p.Name, err)
		}
	}

	return &model.Resolution{
		FullArticlePath: "https://" + hostname + articlePath,
		FullScriptPath:  "https://" + hostname + scriptPath,
		WikiProject:     p.WikiProject.Clone(),
	}, nil
}

// matchProject selects the first project entry whose name suffix-matches
// one of input's first three segments. Later entries are never consulted:
// catalog order is the priority contract.
func (r *Resolver) matchProject(input string) *catalog.Project {
	segments := firstSegments(input)
	for i := range r.catalog.Projects {
		if suffixesAny(segments, r.catalog.Projects[i].Name) {
			return &r.catalog.Projects[i]
		}
	}
	return nil
}
