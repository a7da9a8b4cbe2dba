// Package engine implements the offline-first synchronization core: the
// richness estimator, the conflict resolver, the debounced sync scheduler
// and the connection monitor.
//
// The engine owns no transport or storage of its own. It consumes the
// contracts in interfaces.go — a local document store, a remote store and a
// persisted pending-sync flag — and decides when to push, which side of a
// conflict wins, and when a write must be refused to protect richer data.
package engine
