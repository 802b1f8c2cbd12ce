// Package batch resolves many inputs concurrently against one resolver.
// Resolution is pure and the resolver caches are independently locked, so
// parallel resolution is safe; the processor only bounds the parallelism
// and keeps results in input order.
package batch
