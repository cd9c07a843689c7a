package cellar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellardb/cellar/internal/buf"
	"github.com/cellardb/cellar/internal/format"
)

// -----------------------------------------------------------------------------
// sumWords
// -----------------------------------------------------------------------------

func TestSumWords_AlignedInputStillGetsPaddingWord(t *testing.T) {
	// One full word plus the mandatory "0000" padding word.
	require.Equal(t, int32(1+0x30303030), sumWords([]byte{0, 0, 0, 1}))
	require.Equal(t, int32(0x30303030+0x30303030), sumWords([]byte("0000")))
}

func TestSumWords_Empty(t *testing.T) {
	require.Equal(t, int32(0x30303030), sumWords(nil))
}

func TestSumWords_ShortInputPadsWithASCIIZero(t *testing.T) {
	// "ab" → word "ab00".
	require.Equal(t, int32(0x61623030), sumWords([]byte("ab")))
	// One byte 0xFF → 0xFF303030 (negative as i32).
	require.Equal(t, int32(uint32(0xFF303030)), sumWords([]byte{0xFF}))
}

func TestSumWords_TrailingRemainder(t *testing.T) {
	// 6 bytes: word[0:4] + remainder "cd" padded to "cd00".
	b := []byte{0, 0, 0, 2, 'c', 'd'}
	require.Equal(t, int32(2+0x63643030), sumWords(b))
}

func TestSumWords_SignedWraparound(t *testing.T) {
	// Two max-positive words wrap around the int32 range before the
	// padding word is added.
	b := []byte{0x7F, 0xFF, 0xFF, 0xFF, 0x7F, 0xFF, 0xFF, 0xFF}
	want := int32(-2) + 0x30303030
	require.Equal(t, want, sumWords(b))
}

// -----------------------------------------------------------------------------
// level checksums against a live store
// -----------------------------------------------------------------------------

func TestLevelChecksum_EmptyLevelsAreZero(t *testing.T) {
	st := newTestStore(t)
	for level := 0; level < format.TreeLevels; level++ {
		cs, err := st.levelChecksum(level)
		require.NoError(t, err)
		require.Zero(t, cs)
	}
}

func TestLevelChecksum_RootLevel(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Add("hello", "world"))

	cell := format.EncodeCell(format.StrKey("hello"), format.StrValue("world"))
	want := int64(sumWords(cell)) % checksumModulus
	if want < 0 {
		want += checksumModulus
	}

	got, err := st.levelChecksum(0)
	require.NoError(t, err)
	require.Equal(t, int32(want), got)

	stored, err := st.readChecksum(0)
	require.NoError(t, err)
	require.Equal(t, got, stored)
}

func TestLevelChecksum_XORAcrossLevelSlots(t *testing.T) {
	st := newTestStore(t)
	// "m" at the root; "a" and "z" land on level 1.
	require.NoError(t, st.Add("m", "0"))
	require.NoError(t, st.Add("a", "1"))
	require.NoError(t, st.Add("z", "2"))

	cellA := format.EncodeCell(format.StrKey("a"), format.IntValue(1))
	cellZ := format.EncodeCell(format.StrKey("z"), format.IntValue(2))
	want := int64(sumWords(cellA)^sumWords(cellZ)) % checksumModulus
	if want < 0 {
		want += checksumModulus
	}

	got, err := st.levelChecksum(1)
	require.NoError(t, err)
	require.Equal(t, int32(want), got)
}

func TestVerifyLevel_DetectsDataTamper(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Add("hello", "world"))

	// Flip one byte of the stored cell.
	var w [4]byte
	_, err := st.f.ReadAt(w[:], format.SlotOffset(0))
	require.NoError(t, err)
	cellOff := int64(buf.I32BE(w[:]))
	_, err = st.f.WriteAt([]byte{'X'}, cellOff+20)
	require.NoError(t, err)

	require.Error(t, st.verifyLevel(0))
	require.False(t, st.Validate())
}

func TestRefreshLevel_RepairsAfterLegitimateWrite(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Add("hello", "world"))
	require.NoError(t, st.refreshAllLevels())
	require.True(t, st.Validate())
}
