// Package alloc implements the append-only bump allocator for the data
// region of a container file.
//
// The allocator's entire state is the free-pointer word at offset 0: the
// absolute offset of the next unused data byte. Allocation is a pure bump:
// reserve at the pointer, write the cell, then commit the advanced pointer.
// Freed cells are never reclaimed; the region only resets on init/clear.
package alloc
