// Package model defines the catalog descriptor types (WikiProject,
// FrontendProxy) and the transient resolution result values shared by the
// catalog, resolver, batch, and report layers.
package model
