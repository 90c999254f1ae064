// Package pipeline turns raw dataset rows into enriched records, filters them
// and aggregates the result.
//
// Every function is pure: inputs are never mutated and results are freshly
// allocated, so the cached tables they read from can be shared by concurrent
// requests.
package pipeline
