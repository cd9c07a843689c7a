package cellar

import (
	"github.com/cellardb/cellar/internal/buf"
	"github.com/cellardb/cellar/internal/format"
)

// checksumModulus is applied once per level, after the per-cell sums have
// been XORed together.
const checksumModulus = 1_000_000_007

// sumWords folds a byte buffer into a signed 32-bit word sum: every full
// 4-byte big-endian word is added with wraparound, then the trailing
// len%4 bytes — possibly none — are padded with ASCII '0' to a final word
// and added too. The padded word is always appended, so a 4-aligned buffer
// still contributes one "0000" word. The padding byte and the wraparound
// are part of the on-disk contract.
func sumWords(b []byte) int32 {
	var sum int32
	full := len(b) / format.SlotSize
	for i := 0; i < full; i++ {
		sum += buf.I32BE(b[format.SlotSize*i:])
	}
	tail := [format.SlotSize]byte{'0', '0', '0', '0'}
	copy(tail[:], b[format.SlotSize*full:])
	return sum + buf.I32BE(tail[:])
}

// levelChecksum computes the checksum of one BST level: the XOR of
// sumWords over every cell a non-zero link of that level references,
// reduced modulo checksumModulus into [0, checksumModulus).
func (s *Store) levelChecksum(level int) (int32, error) {
	first, last := format.LevelBounds(level)
	links := make([]byte, (last-first+1)*format.SlotSize)
	if _, err := s.f.ReadAt(links, format.SlotOffset(first)); err != nil {
		return 0, err
	}
	var acc int32
	for off := 0; off < len(links); off += format.SlotSize {
		link := buf.I32BE(links[off:])
		if link == 0 {
			continue
		}
		cell, err := s.readCellBytes(link)
		if err != nil {
			return 0, err
		}
		acc ^= sumWords(cell)
	}
	m := int64(acc) % checksumModulus
	if m < 0 {
		m += checksumModulus
	}
	return int32(m), nil
}

// readChecksum returns the stored checksum word of a level.
func (s *Store) readChecksum(level int) (int32, error) {
	var w [format.SlotSize]byte
	if _, err := s.f.ReadAt(w[:], format.ChecksumOffset(level)); err != nil {
		return 0, err
	}
	return buf.I32BE(w[:]), nil
}

// verifyLevel recomputes a level's checksum and compares it to the stored
// word. A mismatch means the link array or data region changed outside the
// facade and surfaces as *NotDataFileError.
func (s *Store) verifyLevel(level int) error {
	stored, err := s.readChecksum(level)
	if err != nil {
		return err
	}
	computed, err := s.levelChecksum(level)
	if err != nil {
		return err
	}
	if stored != computed {
		return &NotDataFileError{Path: s.path}
	}
	return nil
}

// refreshLevel recomputes and stores one level's checksum.
func (s *Store) refreshLevel(level int) error {
	computed, err := s.levelChecksum(level)
	if err != nil {
		return err
	}
	var w [format.SlotSize]byte
	buf.PutI32BE(w[:], computed)
	_, err = s.f.WriteAt(w[:], format.ChecksumOffset(level))
	return err
}

// refreshAllLevels rewrites every level checksum. Erase moves links across
// levels, so all levels are refreshed; Change also calls it after rewriting
// a cell in place.
func (s *Store) refreshAllLevels() error {
	for level := 0; level < format.TreeLevels; level++ {
		if err := s.refreshLevel(level); err != nil {
			return err
		}
	}
	return nil
}
