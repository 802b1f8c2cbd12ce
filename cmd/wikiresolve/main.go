// Package main provides the entry point for the wikiresolve CLI.
//
// wikiresolve resolves URLs and path fragments against a catalog of known
// MediaWiki installations and frontend proxies, producing normalized
// article and script paths, compact id strings, and proxy link fixes.
//
// Usage:
//
//	wikiresolve resolve <url>...
//	wikiresolve encode <url>
//	wikiresolve decode <id-string> <project-name>
//
// See --help for all available options.
package main

// main is the entry point for wikiresolve.
func main() {
	Execute()
}
