// Package log constructs the structured loggers used by the CLI and the
// batch layer.
package log
