// Package plan holds the plan domain core: the visibility/editability
// authorization predicates, the day-by-day config reconciliation engine, and
// read-time holiday derivation.
//
// The package is deliberately free of transport and storage concerns. It
// consumes the world store and holiday calendar through narrow interfaces so
// the core is testable with in-memory fakes.
package plan
