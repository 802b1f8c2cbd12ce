package catalog

import "errors"

// Catalog validation errors.
// These are returned (wrapped with the offending entry's name) by New and
// the Load functions so callers can use errors.Is for programmatic checks
// while still seeing which entry is broken.
var (
	// ErrCatalogNotFound is returned when no catalog file exists at the
	// requested or any default location.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrMissingName is returned for an entry without a name. The name is
	// the hostname suffix used for matching, so an empty one would match
	// every input.
	ErrMissingName = errors.New("missing name")

	// ErrMissingRegex is returned for an entry without a pattern.
	ErrMissingRegex = errors.New("missing regex")

	// ErrInvalidDirection is returned when an idString direction is
	// neither "asc" nor "desc".
	ErrInvalidDirection = errors.New("invalid idString direction")

	// ErrMissingScriptPaths is returned when an idString block defines no
	// script path templates. Decoding would have nothing to resolve into.
	ErrMissingScriptPaths = errors.New("idString has no scriptPaths")

	// ErrTemplateIndex is returned when a $n template references a capture
	// group or token beyond what the matched pattern provides. This is a
	// catalog configuration error, reported rather than substituted with
	// an empty string.
	ErrTemplateIndex = errors.New("template index out of range")
)
