// Package resolver implements catalog resolution: matching input strings
// against WikiProject and FrontendProxy descriptors, the id-string
// encode/decode codec, and the proxy link-fix helper.
//
// All operations are pure functions of (catalog, input). A Resolver owns
// one memoization cache per public operation; results that carry mutable
// structure are cloned on every cache hit so callers can never observe or
// mutate shared state.
package resolver
