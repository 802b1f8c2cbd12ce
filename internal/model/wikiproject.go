package model

// IDString describes how a project's numeric or identifier path segments
// map to a compact id string such as "7-3".
//
// Regex serves double duty: matched against a full URL it captures the id
// components as groups 2 onward (group 1 stays reserved for the hostname
// convention shared with WikiProject.Regex), and anchored against a bare id
// string it captures the whole id in group 1. Catalog authors express both
// shapes as alternatives of one pattern.
type IDString struct {
	// Separator joins captured id components. Defaults to "-".
	Separator string `yaml:"separator"`

	// Direction orders captured components before joining: "asc" keeps
	// match order, "desc" reverses it. Defaults to "asc".
	Direction Direction `yaml:"direction"`

	// Regex is the id pattern described above.
	Regex string `yaml:"regex"`

	// ScriptPaths holds URL templates indexed by component count minus
	// one: an id string that splits into n tokens resolves through
	// ScriptPaths[n-1]. Each template references tokens as $1..$n.
	ScriptPaths []string `yaml:"scriptPaths"`
}

// Clone returns a deep copy of the IDString.
func (i *IDString) Clone() *IDString {
	if i == nil {
		return nil
	}
	c := *i
	c.ScriptPaths = append([]string(nil), i.ScriptPaths...)
	return &c
}

// WikiProject describes one MediaWiki installation or installation family
// in the catalog.
//
// Catalog order is a priority order: when two entries' Name both
// suffix-match an input segment, the earlier entry wins. That ordering is
// part of the catalog authoring contract, not a tie-break heuristic.
type WikiProject struct {
	// Name is the hostname suffix that selects this entry.
	Name string `yaml:"name"`

	// Regex matches the start of an input URL. Its first capture group
	// must yield the canonical hostname.
	Regex string `yaml:"regex"`

	// ArticlePath is the path articles live under, e.g. "/wiki/".
	// When RegexPaths is true it is a $n template instead of a literal.
	ArticlePath string `yaml:"articlePath"`

	// ScriptPath is the path the MediaWiki script lives under, e.g. "/w/".
	// Templated like ArticlePath when RegexPaths is true.
	ScriptPath string `yaml:"scriptPath"`

	// IDString configures the id-string codec for this project, or nil
	// when the project has no compact id representation.
	IDString *IDString `yaml:"idString"`

	// RegexPaths marks ArticlePath and ScriptPath as $n templates to be
	// expanded with capture groups of the resolved match.
	RegexPaths bool `yaml:"regexPaths"`

	// WikiFarm is the hosting family, or WikiFarmNone.
	WikiFarm WikiFarm `yaml:"wikiFarm"`

	// Extensions lists installed API-providing extension names.
	Extensions []string `yaml:"extensions"`

	// URLSpaceReplacement is the character substituted for spaces in
	// article URLs. Defaults to "_".
	URLSpaceReplacement string `yaml:"urlSpaceReplacement"`

	// Note is free-form catalog commentary.
	Note string `yaml:"note"`
}

// Clone returns a deep copy of the WikiProject. Resolution results hand
// out clones so callers can never mutate catalog state through them.
func (p *WikiProject) Clone() WikiProject {
	c := *p
	c.IDString = p.IDString.Clone()
	c.Extensions = append([]string(nil), p.Extensions...)
	return c
}

// Resolution is the result of resolving an input against the project
// catalog. It is a transient value: WikiProject is a copy, never a
// reference into the live catalog.
type Resolution struct {
	// FullArticlePath is the absolute article path, e.g.
	// "https://foo.wiki.example.org/wiki/".
	FullArticlePath string `json:"fullArticlePath"`

	// FullScriptPath is the absolute script path, e.g.
	// "https://foo.wiki.example.org/w/".
	FullScriptPath string `json:"fullScriptPath"`

	// WikiProject is a copy of the matched catalog entry.
	WikiProject WikiProject `json:"wikiProject"`
}

// Clone returns a deep copy of the Resolution.
func (r *Resolution) Clone() *Resolution {
	if r == nil {
		return nil
	}
	return &Resolution{
		FullArticlePath: r.FullArticlePath,
		FullScriptPath:  r.FullScriptPath,
		WikiProject:     r.WikiProject.Clone(),
	}
}
