package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellardb/cellar/internal/buf"
	"github.com/cellardb/cellar/internal/format"
)

// memRegion is an in-memory Region holding just the header words a Bump
// touches.
type memRegion struct {
	b []byte
}

func newMemRegion() *memRegion {
	r := &memRegion{b: make([]byte, 16)}
	buf.PutI32BE(r.b, format.ChecksumsDataBoundary)
	return r
}

func (m *memRegion) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, m.b[off:]), nil
}

func (m *memRegion) WriteAt(p []byte, off int64) (int, error) {
	return copy(m.b[off:], p), nil
}

func TestBump_FreshRegion(t *testing.T) {
	b := New(newMemRegion())
	fp, err := b.Free()
	require.NoError(t, err)
	require.Equal(t, int32(format.ChecksumsDataBoundary), fp)
}

func TestBump_ReserveCommit(t *testing.T) {
	b := New(newMemRegion())

	off, err := b.Reserve(42)
	require.NoError(t, err)
	require.Equal(t, int32(format.ChecksumsDataBoundary), off)

	// Reserve does not move the pointer.
	again, err := b.Reserve(42)
	require.NoError(t, err)
	require.Equal(t, off, again)

	require.NoError(t, b.Commit(off, 42))
	fp, err := b.Free()
	require.NoError(t, err)
	require.Equal(t, off+42, fp)
}

func TestBump_WholeRegionFits(t *testing.T) {
	b := New(newMemRegion())
	off, err := b.Reserve(format.MaxCellSize)
	require.NoError(t, err)
	require.Equal(t, int32(format.ChecksumsDataBoundary), off)
}

func TestBump_TooBig(t *testing.T) {
	b := New(newMemRegion())
	_, err := b.Reserve(format.MaxCellSize + 1)
	require.ErrorIs(t, err, ErrTooBig)
}

func TestBump_NoSpace(t *testing.T) {
	r := newMemRegion()
	b := New(r)
	require.NoError(t, b.Commit(format.FullCapacity-10, 0))

	_, err := b.Reserve(10)
	require.NoError(t, err)
	_, err = b.Reserve(11)
	require.ErrorIs(t, err, ErrNoSpace)
}

func TestBump_Reset(t *testing.T) {
	b := New(newMemRegion())
	require.NoError(t, b.Commit(format.ChecksumsDataBoundary, 1000))
	require.NoError(t, b.Reset())
	fp, err := b.Free()
	require.NoError(t, err)
	require.Equal(t, int32(format.ChecksumsDataBoundary), fp)
}

func TestBump_CorruptPointer(t *testing.T) {
	r := newMemRegion()
	buf.PutI32BE(r.b, format.ChecksumsDataBoundary-1)
	_, err := New(r).Free()
	require.ErrorIs(t, err, ErrCorruptPointer)
}
