// Package client assembles the agent runtime: the local SQLite store, the
// HTTP server adapter, and the sync engine (monitor, estimator, resolver,
// scheduler), plus the periodic reconcile worker.
//
// The App is the embedding surface for a front-end: it exposes document
// load/save, account operations and sync status, and hides every
// synchronization concern behind them.
package client
