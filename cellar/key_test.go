package cellar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellardb/cellar/internal/format"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"5", format.IntKey(5)},
		{"-5", format.IntKey(-5)},
		{"+5", format.IntKey(5)},
		{"0", format.IntKey(0)},
		{"2147483647", format.IntKey(1<<31 - 1)},
		{"-2147483648", format.IntKey(-1 << 31)},

		// Out of 32-bit range or not a decimal: string.
		{"2147483648", format.StrKey("2147483648")},
		{"1e3", format.StrKey("1e3")},
		{"5.0", format.StrKey("5.0")},
		{" 5", format.StrKey(" 5")},
		{"", format.StrKey("")},
		{"hello", format.StrKey("hello")},

		// Quote runs of equal length strip to the inner text.
		{"'42'", format.StrKey("42")},
		{"''42''", format.StrKey("42")},
		{`"42"`, format.StrKey("42")},
		{`""abc""`, format.StrKey("abc")},
		{"'hello'", format.StrKey("hello")},

		// Unbalanced or empty runs stay literal.
		{"'42", format.StrKey("'42")},
		{"42'", format.StrKey("42'")},
		{"''42'", format.StrKey("''42'")},
		{"''", format.StrKey("''")},
		{"'''", format.StrKey("'''")},
		{`'42"`, format.StrKey(`'42"`)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeKey(tc.in))
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	v := NormalizeValue("17")
	require.Equal(t, format.KindInt, v.Kind)
	require.Equal(t, int32(17), v.Int)

	v = NormalizeValue("seventeen")
	require.Equal(t, format.KindString, v.Kind)
	require.Equal(t, "seventeen", string(v.Bytes))

	v = NormalizeValue("'17'")
	require.Equal(t, format.KindString, v.Kind)
	require.Equal(t, "17", string(v.Bytes))
}

func TestCompareKeys(t *testing.T) {
	intK := format.IntKey
	strK := format.StrKey

	// Equal type and value.
	require.Equal(t, 0, compareKeys(intK(5), intK(5)))
	require.Equal(t, 0, compareKeys(strK("a"), strK("a")))

	// Same type: 1 means "descend to 2i+1", -1 to 2i+2.
	require.Equal(t, 1, compareKeys(intK(1), intK(2)))
	require.Equal(t, -1, compareKeys(intK(2), intK(1)))
	require.Equal(t, 1, compareKeys(strK("a"), strK("b")))
	require.Equal(t, -1, compareKeys(strK("b"), strK("a")))

	// Mixed types: the integer side always compares -1.
	require.Equal(t, -1, compareKeys(intK(999), strK("0")))
	require.Equal(t, 1, compareKeys(strK("0"), intK(999)))

	// Same numeric payload, different type, never equal.
	require.Equal(t, -1, compareKeys(intK(42), strK("42")))
}

func TestCompareKeys_LexicographicBytes(t *testing.T) {
	require.Equal(t, 1, compareKeys(format.StrKey("Z"), format.StrKey("a")))
	require.Equal(t, -1, compareKeys(format.StrKey("ab"), format.StrKey("aB")))
	require.Equal(t, 1, compareKeys(format.StrKey("a"), format.StrKey("ab")))
}
