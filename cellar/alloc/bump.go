package alloc

import (
	"io"

	"github.com/cellardb/cellar/internal/buf"
	"github.com/cellardb/cellar/internal/format"
)

// Region is the random-access container the allocator manages. In
// production it is the container *os.File.
type Region interface {
	io.ReaderAt
	io.WriterAt
}

// Bump is the append-only allocator over a container's free-pointer word.
type Bump struct {
	r Region
}

// New returns an allocator over r. No state is cached; every call reads the
// free-pointer from the region so external writers (init, clear) stay
// coherent.
func New(r Region) *Bump {
	return &Bump{r: r}
}

// Free returns the current free-pointer.
func (b *Bump) Free() (int32, error) {
	var w [format.SlotSize]byte
	if _, err := b.r.ReadAt(w[:], format.FreePointerOffset); err != nil {
		return 0, err
	}
	fp := buf.I32BE(w[:])
	if fp < format.ChecksumsDataBoundary {
		return 0, ErrCorruptPointer
	}
	return fp, nil
}

// Reserve returns the offset where a cell of n bytes must be written.
// The free-pointer is not advanced; call Commit once the cell bytes are on
// disk.
func (b *Bump) Reserve(n int32) (int32, error) {
	if n > format.MaxCellSize {
		return 0, ErrTooBig
	}
	fp, err := b.Free()
	if err != nil {
		return 0, err
	}
	if int64(fp)+int64(n) > format.FullCapacity {
		return 0, ErrNoSpace
	}
	return fp, nil
}

// Commit advances the free-pointer past a cell written at off.
func (b *Bump) Commit(off, n int32) error {
	var w [format.SlotSize]byte
	buf.PutI32BE(w[:], off+n)
	_, err := b.r.WriteAt(w[:], format.FreePointerOffset)
	return err
}

// Reset rewinds the free-pointer to the start of the data region.
func (b *Bump) Reset() error {
	var w [format.SlotSize]byte
	buf.PutI32BE(w[:], format.ChecksumsDataBoundary)
	_, err := b.r.WriteAt(w[:], format.FreePointerOffset)
	return err
}
