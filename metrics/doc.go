// Package metrics computes structural statistics of a parsed stylesheet.
//
// Work is done in three steps: Flatten reduces the nested rule tree to
// ordered sequences of rules and selectors, ExtractElements normalizes
// selectors into a sorted set of element-like tokens and Aggregate combines
// both with externally computed sizes into a StatsRecord. Nothing here does
// I/O or returns errors.
package metrics
