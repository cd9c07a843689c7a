package cellar

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/cellardb/cellar/internal/format"
)

// Keys returns every key in the container. The traversal is iterative —
// an explicit stack over slot indexes, a node emitted after both its
// subtrees, slot 2i+2 first — and its order is part of the CLI contract.
// The validity gate has already verified every level.
func (s *Store) Keys() ([]Key, error) {
	if err := s.ensureValid(); err != nil {
		return nil, err
	}
	var keys []Key
	visited := bitset.New(format.MaxTreeIndex + 1)
	stack := []int32{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		visited.Set(uint(idx))
		link, err := s.readLink(idx)
		if err != nil {
			return nil, err
		}
		if link == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		for _, child := range []int32{2*idx + 1, 2*idx + 2} {
			if child > format.MaxTreeIndex || visited.Test(uint(child)) {
				continue
			}
			childLink, err := s.readLink(child)
			if err != nil {
				return nil, err
			}
			if childLink != 0 {
				stack = append(stack, child)
			}
		}
		if stack[len(stack)-1] == idx {
			stack = stack[:len(stack)-1]
			cell, err := s.parseCellAt(link)
			if err != nil {
				return nil, err
			}
			keys = append(keys, cell.Key)
		}
	}
	return keys, nil
}
