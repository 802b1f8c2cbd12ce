package model

// Outcome is the per-input result of a batch resolution run. Exactly one
// of Project and Proxy is set when the input matched; both are nil when
// nothing in the catalog claimed it.
type Outcome struct {
	// Input is the string that was resolved.
	Input string `json:"input"`

	// Project is the project resolution, if the input matched a
	// WikiProject entry.
	Project *Resolution `json:"project,omitempty"`

	// Proxy is the proxy resolution, if the input matched a
	// FrontendProxy entry instead.
	Proxy *ProxyResolution `json:"proxy,omitempty"`

	// IDString is the encoded id string for project matches whose entry
	// defines an id-string codec, empty otherwise.
	IDString string `json:"idString,omitempty"`

	// Err holds a resolution error message, empty on success. Errors are
	// configuration problems surfaced at resolution time (for example an
	// out-of-range template index); "no match" is not an error.
	Err string `json:"error,omitempty"`
}

// Matched reports whether the input matched any catalog entry.
func (o *Outcome) Matched() bool {
	return o.Project != nil || o.Proxy != nil
}
