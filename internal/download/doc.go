// Package download orchestrates a single download at a time: it turns a
// search into a catalog, validates a selection and destination, runs the
// transfer on a worker goroutine and posts job snapshots to a listener in the
// order they were observed.
package download
