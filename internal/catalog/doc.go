// Package catalog loads and normalizes the static catalog of WikiProject
// and FrontendProxy descriptors that resolution runs against.
//
// Loading fills schema defaults, compiles every pattern, and validates
// every $n template eagerly, so a malformed catalog fails at load time
// instead of at first use of the broken entry. The order of entries in the
// catalog file is a priority order and is preserved exactly: when two
// entries both suffix-match an input, the earlier one wins.
package catalog
