package cellar

import "github.com/cellardb/cellar/internal/format"

// The index is an implicit-array BST over the link slots: slot 0 is the
// root and slot i's children are 2i+1 and 2i+2. The comparator's sign picks
// the child: 1 descends to 2i+1, -1 to 2i+2. Nothing is rebalanced; the
// shape is whatever the insertion order produced.

// locate walks the tree looking for key. It returns the slot index holding
// the key when found. Every level on the walk is checksum-verified first.
func (s *Store) locate(key Key) (found bool, idx int32, err error) {
	idx = 0
	for level := 0; ; level++ {
		if idx > format.MaxTreeIndex {
			return false, 0, nil
		}
		if err := s.verifyLevel(level); err != nil {
			return false, 0, err
		}
		link, err := s.readLink(idx)
		if err != nil {
			return false, 0, err
		}
		if link == 0 {
			return false, 0, nil
		}
		cell, err := s.parseCellAt(link)
		if err != nil {
			return false, 0, err
		}
		switch compareKeys(key, cell.Key) {
		case 0:
			return true, idx, nil
		case 1:
			idx = 2*idx + 1
		default:
			idx = 2*idx + 2
		}
	}
}

// probeInsert walks the tree to the empty slot where key belongs. Unlike
// locate, an equal key descends toward 2i+2; duplicates are screened by the
// facade before insertion, so the branch only matters for walk shape.
// A walk that runs past the last slot yields *TreeFullError.
func (s *Store) probeInsert(key Key) (int32, error) {
	idx := int32(0)
	for level := 0; ; level++ {
		if idx > format.MaxTreeIndex {
			return 0, &TreeFullError{Path: s.path}
		}
		if err := s.verifyLevel(level); err != nil {
			return 0, err
		}
		link, err := s.readLink(idx)
		if err != nil {
			return 0, err
		}
		if link == 0 {
			return idx, nil
		}
		cell, err := s.parseCellAt(link)
		if err != nil {
			return 0, err
		}
		if compareKeys(key, cell.Key) == 1 {
			idx = 2*idx + 1
		} else {
			idx = 2*idx + 2
		}
	}
}

// Splice directions. right descends the greater-side chain first (2i+2),
// left the other; 3-d flips one into the other.
const (
	spliceLeft  int32 = 1
	spliceRight int32 = 2
)

// eraseAt removes the link at idx while keeping the remaining links a valid
// BST, without moving any cell bytes. Each vacated slot is refilled from
// the extreme of one subtree: right child present → right once then left as
// far as possible; else left once then right as far as possible; else the
// slot was a leaf and the loop ends. When the donor slot itself has a child
// on the descent side, the donor becomes the next slot to vacate.
//
// Callers refresh every level afterwards; link moves ripple across levels.
func (s *Store) eraseAt(idx int32) error {
	for idx <= format.MaxTreeIndex {
		if err := s.verifyLevel(format.Depth(idx)); err != nil {
			return err
		}
		if err := s.writeLink(idx, 0); err != nil {
			return err
		}
		right, err := s.readLink(2*idx + 2)
		if err != nil {
			return err
		}
		if right != 0 {
			next, err := s.spliceExtreme(idx, spliceRight)
			if err != nil {
				return err
			}
			if next < 0 {
				return nil
			}
			idx = next
			continue
		}
		left, err := s.readLink(2*idx + 1)
		if err != nil {
			return err
		}
		if left != 0 {
			next, err := s.spliceExtreme(idx, spliceLeft)
			if err != nil {
				return err
			}
			if next < 0 {
				return nil
			}
			idx = next
			continue
		}
		return nil
	}
	return nil
}

// spliceExtreme descends one step in direction dir from idx, then chases
// the opposite direction while a linked child remains in bounds. The final
// slot's link is copied into idx. When the final slot has no child on the
// dir side the chain ends there: the slot is zeroed and -1 is returned.
// Otherwise the final slot is returned so the erase loop can vacate it.
func (s *Store) spliceExtreme(idx, dir int32) (int32, error) {
	opp := 3 - dir
	last := 2*idx + dir
	for {
		next := 2*last + opp
		if next > format.MaxTreeIndex {
			break
		}
		link, err := s.readLink(next)
		if err != nil {
			return 0, err
		}
		if link == 0 {
			break
		}
		last = next
	}
	donor, err := s.readLink(last)
	if err != nil {
		return 0, err
	}
	if err := s.writeLink(idx, donor); err != nil {
		return 0, err
	}
	child := 2*last + dir
	if child > format.MaxTreeIndex {
		if err := s.writeLink(last, 0); err != nil {
			return 0, err
		}
		return -1, nil
	}
	childLink, err := s.readLink(child)
	if err != nil {
		return 0, err
	}
	if childLink == 0 {
		if err := s.writeLink(last, 0); err != nil {
			return 0, err
		}
		return -1, nil
	}
	return last, nil
}
