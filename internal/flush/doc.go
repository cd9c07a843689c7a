// Package flush hides the platform differences in forcing file writes to
// stable storage. The container is written with plain pwrite calls; Sync is
// invoked once when a store closes.
package flush
