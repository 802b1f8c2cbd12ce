package resolver

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PanchamBro/mediawiki-projects-list/internal/catalog"
	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// decodeKeySep separates the id string from the project name in the
// decode cache key. A NUL cannot occur in either part.
const decodeKeySep = "\x00"

// EncodeIDString encodes u into the compact id string of the first catalog
// entry that defines an idString block and whose name is a hostname suffix
// of u. The id pattern runs against the full URL string; participating
// capture groups from group 2 onward become the id components (group 1 is
// reserved by the hostname convention). Components are reversed first for
// desc-direction projects, then joined with the project separator.
//
// ok is false when no entry matches or the match yields no components.
func (r *Resolver) EncodeIDString(u *url.URL) (id string, ok bool) {
	key := u.String()
	if e, found := r.encodes.get(key); found {
		return e.id, e.ok
	}

	id, ok = r.encode(u)
	r.encodes.put(key, encodeEntry{id: id, ok: ok})
	return id, ok
}

// encode computes an uncached id string.
func (r *Resolver) encode(u *url.URL) (string, bool) {
	hostname := u.Hostname()
	href := u.String()

	var p *catalog.Project
	for i := range r.catalog.Projects {
		candidate := &r.catalog.Projects[i]
		if candidate.IDPattern != nil && strings.HasSuffix(hostname, candidate.Name) {
			p = candidate
			break
		}
	}
	if p == nil {
		return "", false
	}

	idx := p.IDPattern.FindStringSubmatchIndex(href)
	if idx == nil {
		return "", false
	}

	// Collect participating groups 2..N. Optional groups that did not
	// take part in the match are skipped, not joined as empty strings.
	var parts []string
	for g := 2; g <= p.IDPattern.NumSubexp(); g++ {
		if idx[2*g] < 0 {
			continue
		}
		parts = append(parts, href[idx[2*g]:idx[2*g+1]])
	}
	if len(parts) == 0 {
		return "", false
	}

	if p.IDString.Direction == model.DirectionDesc {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	return strings.Join(parts, p.IDString.Separator), true
}

// DecodeIDString converts an id string back into a URL for the project
// named projectName (exact name match, not suffix). The anchored id
// pattern must match the whole id string; capture group 1 is split on the
// project separator and the script path template for that token count is
// expanded with the tokens in split order.
//
// Tokens are NOT re-reversed for desc-direction projects even though
// EncodeIDString reversed them, so encode-then-decode is only an identity
// for asc projects. The asymmetry is long-standing observed behavior and
// is preserved deliberately.
//
// A nil URL with a nil error means no match. Only the resolved URL string
// is cached; every call, hit or miss, parses a fresh *url.URL because URL
// values are mutable and must not be shared.
func (r *Resolver) DecodeIDString(idString, projectName string) (*url.URL, error) {
	key := idString + decodeKeySep + projectName
	if e, found := r.decodes.get(key); found {
		if !e.ok {
			return nil, nil
		}
		return url.Parse(e.raw)
	}

	raw, ok, err := r.decode(idString, projectName)
	if err != nil {
		return nil, err
	}
	if !ok {
		r.decodes.put(key, decodeEntry{})
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("decode id string %q: %w", idString, err)
	}
	r.decodes.put(key, decodeEntry{raw: raw, ok: true})
	return u, nil
}

// decode computes an uncached decode, returning the resolved URL string.
func (r *Resolver) decode(idString, projectName string) (string, bool, error) {
	var p *catalog.Project
	for i := range r.catalog.Projects {
		candidate := &r.catalog.Projects[i]
		if candidate.Name == projectName && candidate.IDAnchored != nil {
			p = candidate
			break
		}
	}
	if p == nil {
		return "", false, nil
	}

	m := p.IDAnchored.FindStringSubmatch(idString)
	if m == nil || m[1] == "" {
		return "", false, nil
	}

	tokens := strings.Split(m[1], p.IDString.Separator)
	if len(tokens) > len(p.IDString.ScriptPaths) {
		return "", false, nil
	}
	tmpl := p.IDString.ScriptPaths[len(tokens)-1]
	if tmpl == "" {
		return "", false, nil
	}

	out, err := catalog.ExpandTemplate(tmpl, tokens)
	if err != nil {
		return "", false, fmt.Errorf("project %q: %w", p.Name, err)
	}
	return out, true, nil
}
