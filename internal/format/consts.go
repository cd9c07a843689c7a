// Package format houses the on-disk layout of a cellar container file and
// the codec for its cell records. The goal is to keep the byte-level
// knowledge in one place, independent from the public API, so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// A container is a single file of exactly FullCapacity bytes:
//
//	Offset      Size        Description
//	0x000000    4           Free-pointer: offset of the next free data byte.
//	0x000004    1,048,572   Link array: 262,143 big-endian i32 slots forming
//	                        an implicit-array BST. Zero means empty.
//	0x100000    72          Checksum array: one big-endian i32 per BST level.
//	0x100048    25,165,752  Data region: concatenated cell records.
//
// All integers on disk are big-endian signed 32-bit.
package format

import "math/bits"

const (
	// FreePointerOffset is where the free-pointer word lives.
	FreePointerOffset = 0

	// LinksStart is the byte offset of link slot 0.
	LinksStart = 4

	// LinksChecksumsBoundary is the end of the link array and the start of
	// the checksum array.
	LinksChecksumsBoundary = 1048576

	// ChecksumsDataBoundary is the end of the checksum array and the start
	// of the data region. It is also the initial free-pointer value.
	ChecksumsDataBoundary = 1048648

	// FullCapacity is the exact size of a container file in bytes.
	FullCapacity = 26214400

	// SlotSize is the width of a link or checksum slot.
	SlotSize = 4

	// MaxTreeIndex is the largest addressable BST slot index.
	MaxTreeIndex = 1<<18 - 2 // 262,142

	// TreeLevels is the number of BST levels (depths 0 through 17), each
	// with its own checksum slot.
	TreeLevels = 18

	// MaxCellSize is the largest cell the data region can hold.
	MaxCellSize = FullCapacity - ChecksumsDataBoundary

	// MinCellSize is the smallest well-formed cell: five length words, a
	// "string" key tag with an empty payload, and a "file" value tag with
	// an empty payload.
	MinCellSize = 5*SlotSize + len(KindString) + len(KindFile)
)

// SlotOffset maps a BST slot index to its byte offset in the link array.
func SlotOffset(i int32) int64 {
	return LinksStart + SlotSize*int64(i)
}

// ChecksumOffset maps a BST level to its byte offset in the checksum array.
func ChecksumOffset(level int) int64 {
	return LinksChecksumsBoundary + SlotSize*int64(level)
}

// Depth returns the BST level of slot i: floor(log2(i+1)).
func Depth(i int32) int {
	return bits.Len32(uint32(i)+1) - 1
}

// LevelBounds returns the first and last slot index of a BST level.
func LevelBounds(level int) (first, last int32) {
	return 1<<level - 1, 1<<(level+1) - 2
}
