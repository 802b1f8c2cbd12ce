// Package report writes resolution outcomes in human-readable text, JSON,
// and GitHub Flavored Markdown formats.
package report
