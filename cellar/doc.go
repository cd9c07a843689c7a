// Package cellar implements an embedded key–value store backed by a single
// fixed-size container file.
//
// The container is exactly 26,214,400 bytes: a free-pointer word, a link
// array forming an implicit binary search tree, a per-level checksum array,
// and an append-only data region of serialized cells. The byte layout is a
// contract; independent implementations operating on the same file must
// agree on its contents.
//
// A Store is single-writer and synchronous. Every operation other than
// Init first validates the container (free-pointer, link bounds, and
// all level checksums) and fails with *NotDataFileError when the file has
// been tampered with.
package cellar
