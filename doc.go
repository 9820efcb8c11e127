// Package stashmate implements a personal inventory and resale tracker.
//
// Collectible items are grouped into collections, each persisted as a JSONL
// ledger file. The package computes aggregate financial metrics (inventory
// value, potential profit, realized revenue) over calendar-aware time
// windows, builds gap-filled daily revenue series, and lays out a line chart
// of the series for any drawing backend.
//
// Everything downstream of the ledger is a pure function of a snapshot:
// query, metrics, series and chart layout are recomputed in full on every
// change.
package stashmate
