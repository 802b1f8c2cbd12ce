package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
)

// Schema default values applied to catalog entries that omit the field.
const (
	// DefaultSeparator joins id-string components when an idString block
	// does not name its own separator.
	DefaultSeparator = "-"

	// DefaultDirection orders id-string components in match order.
	DefaultDirection = model.DirectionAsc

	// DefaultURLSpaceReplacement is the character MediaWiki substitutes
	// for spaces in article URLs.
	DefaultURLSpaceReplacement = "_"
)

// Project is a catalog WikiProject with its patterns compiled and its path
// literals precomputed. Compilation happens once at load time; resolution
// only ever executes ready patterns.
type Project struct {
	model.WikiProject

	// PathPattern is Regex followed by the article/script/end alternation
	// used by project resolution. Group 1 is the canonical hostname.
	PathPattern *regexp.Regexp

	// ArticleLiteral is ArticlePath stripped of any query suffix. For
	// non-templated entries it is both the match literal and the output
	// path.
	ArticleLiteral string

	// IDPattern is the compiled idString regex, nil when the entry has no
	// idString block. Applied unanchored to full URLs when encoding.
	IDPattern *regexp.Regexp

	// IDAnchored is IDPattern anchored as ^(?:...)$, applied to bare id
	// strings when decoding.
	IDAnchored *regexp.Regexp
}

// Proxy is a catalog FrontendProxy with its pattern compiled.
type Proxy struct {
	model.FrontendProxy

	// Pattern is the compiled Regex. Proxies have no article/script
	// alternation; the pattern alone decides the match.
	Pattern *regexp.Regexp
}

// Catalog is the normalized, compiled catalog the resolver runs against.
// Both slices preserve file order and must be treated as read-only; the
// resolver hands out copies of entries, never references into them.
type Catalog struct {
	Projects []Project
	Proxies  []Proxy
}

// New normalizes and compiles raw descriptors into a Catalog.
// It applies schema defaults, compiles every pattern, and validates every
// template reference, returning the first problem found wrapped with the
// offending entry's name.
func New(projects []model.WikiProject, proxies []model.FrontendProxy) (*Catalog, error) {
	c := &Catalog{
		Projects: make([]Project, 0, len(projects)),
		Proxies:  make([]Proxy, 0, len(proxies)),
	}

	for _, raw := range projects {
		p, err := compileProject(raw)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", raw.Name, err)
		}
		c.Projects = append(c.Projects, p)
	}

	for _, raw := range proxies {
		p, err := compileProxy(raw)
		if err != nil {
			return nil, fmt.Errorf("frontend proxy %q: %w", raw.Name, err)
		}
		c.Proxies = append(c.Proxies, p)
	}

	return c, nil
}

// compileProject applies defaults to one WikiProject and compiles its
// patterns.
func compileProject(raw model.WikiProject) (Project, error) {
	if raw.Name == "" {
		return Project{}, ErrMissingName
	}
	if raw.Regex == "" {
		return Project{}, ErrMissingRegex
	}

	if raw.URLSpaceReplacement == "" {
		raw.URLSpaceReplacement = DefaultURLSpaceReplacement
	}
	if raw.IDString != nil {
		if raw.IDString.Separator == "" {
			raw.IDString.Separator = DefaultSeparator
		}
		if raw.IDString.Direction == "" {
			raw.IDString.Direction = DefaultDirection
		}
		if !raw.IDString.Direction.IsValid() {
			return Project{}, fmt.Errorf("%w: %q", ErrInvalidDirection, raw.IDString.Direction)
		}
	}

	p := Project{
		WikiProject:    raw,
		ArticleLiteral: strings.SplitN(raw.ArticlePath, "?", 2)[0],
	}

	// The resolution pattern consumes the project regex and then one of:
	// the literal article path, the literal script path, or an optional
	// trailing slash at end of input. Templated paths are escaped like
	// literals here; inputs for those projects terminate through the
	// project regex itself and the /?$ alternative.
	pattern := raw.Regex +
		"(?:" + regexp.QuoteMeta(p.ArticleLiteral) +
		"|" + regexp.QuoteMeta(raw.ScriptPath) +
		"|/?$)"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Project{}, fmt.Errorf("compile path pattern: %w", err)
	}
	p.PathPattern = re

	if raw.RegexPaths {
		if n := maxTemplateIndex(raw.ArticlePath); n > re.NumSubexp() {
			return Project{}, fmt.Errorf("articlePath: %w: $%d of %d groups", ErrTemplateIndex, n, re.NumSubexp())
		}
		if n := maxTemplateIndex(raw.ScriptPath); n > re.NumSubexp() {
			return Project{}, fmt.Errorf("scriptPath: %w: $%d of %d groups", ErrTemplateIndex, n, re.NumSubexp())
		}
	}

	if raw.IDString != nil {
		if err := compileIDString(&p); err != nil {
			return Project{}, fmt.Errorf("idString: %w", err)
		}
	}

	return p, nil
}

// compileIDString compiles and validates the idString block of p.
func compileIDString(p *Project) error {
	id := p.IDString
	if id.Regex == "" {
		return ErrMissingRegex
	}
	if len(id.ScriptPaths) == 0 {
		return ErrMissingScriptPaths
	}

	re, err := regexp.Compile(id.Regex)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	anchored, err := regexp.Compile("^(?:" + id.Regex + ")$")
	if err != nil {
		return fmt.Errorf("compile anchored: %w", err)
	}
	p.IDPattern = re
	p.IDAnchored = anchored

	// Encoding takes groups 2..N, so the pattern can produce at most
	// NumSubexp()-1 components and every component count needs a script
	// path template to decode back through.
	if max := re.NumSubexp() - 1; max > len(id.ScriptPaths) {
		return fmt.Errorf("%w: pattern yields up to %d components, %d scriptPaths",
			ErrMissingScriptPaths, max, len(id.ScriptPaths))
	}

	// Template i is selected for i+1 tokens and may reference $1..$(i+1).
	for i, tmpl := range id.ScriptPaths {
		if n := maxTemplateIndex(tmpl); n > i+1 {
			return fmt.Errorf("scriptPaths[%d]: %w: $%d of %d tokens", i, ErrTemplateIndex, n, i+1)
		}
	}

	return nil
}

// compileProxy applies defaults to one FrontendProxy and compiles its
// pattern.
func compileProxy(raw model.FrontendProxy) (Proxy, error) {
	if raw.Name == "" {
		return Proxy{}, ErrMissingName
	}
	if raw.Regex == "" {
		return Proxy{}, ErrMissingRegex
	}

	re, err := regexp.Compile(raw.Regex)
	if err != nil {
		return Proxy{}, fmt.Errorf("compile: %w", err)
	}

	for _, tmpl := range []string{raw.NamePath, raw.ArticlePath, raw.ScriptPath} {
		if n := maxTemplateIndex(tmpl); n > re.NumSubexp() {
			return Proxy{}, fmt.Errorf("%w: $%d of %d groups in %q", ErrTemplateIndex, n, re.NumSubexp(), tmpl)
		}
	}

	return Proxy{FrontendProxy: raw, Pattern: re}, nil
}
