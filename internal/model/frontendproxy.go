package model

// FrontendProxy describes a caching or reverse-proxy front for one or more
// wikis. Unlike WikiProject paths, all three path fields are always $n
// templates expanded with the capture groups of Regex.
type FrontendProxy struct {
	// Name is the hostname suffix that selects this entry.
	Name string `yaml:"name"`

	// Regex matches the start of an input URL. Group 1 is the proxied
	// hostname by the same convention as WikiProject.Regex.
	Regex string `yaml:"regex"`

	// NamePath is the template for the human-readable name segment of a
	// proxied URL.
	NamePath string `yaml:"namePath"`

	// ArticlePath is the template for the proxied article path.
	ArticlePath string `yaml:"articlePath"`

	// ScriptPath is the template for the proxied script path.
	ScriptPath string `yaml:"scriptPath"`
}

// Clone returns a copy of the FrontendProxy. The type has no reference
// fields today; the method exists so proxy results follow the same
// non-aliasing contract as project results.
func (p *FrontendProxy) Clone() FrontendProxy {
	return *p
}

// ProxyResolution is the result of resolving an input against the
// frontend-proxy catalog.
type ProxyResolution struct {
	// FullNamePath is the expanded NamePath template.
	FullNamePath string `json:"fullNamePath"`

	// FullArticlePath is the expanded ArticlePath template.
	FullArticlePath string `json:"fullArticlePath"`

	// FullScriptPath is the expanded ScriptPath template.
	FullScriptPath string `json:"fullScriptPath"`

	// FrontendProxy is a copy of the matched catalog entry.
	FrontendProxy FrontendProxy `json:"frontendProxy"`
}

// Clone returns a deep copy of the ProxyResolution.
func (r *ProxyResolution) Clone() *ProxyResolution {
	if r == nil {
		return nil
	}
	c := *r
	c.FrontendProxy = r.FrontendProxy.Clone()
	return &c
}
