package cellar

import (
	"strconv"
	"strings"

	"github.com/cellardb/cellar/internal/format"
)

// NormalizeKey resolves the typed key behind a command-line token:
//
//  1. Text that parses as a signed decimal fitting 32 bits is an integer.
//  2. Text wrapped in equal-length runs of ' or " quotes is the inner
//     string with the runs stripped.
//  3. Anything else is the string as given.
func NormalizeKey(text string) Key {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return format.IntKey(int32(n))
	}
	if inner, ok := stripQuoteRun(text); ok {
		return format.StrKey(inner)
	}
	return format.StrKey(text)
}

// NormalizeValue applies the same rule to a "data" value token.
func NormalizeValue(text string) Value {
	k := NormalizeKey(text)
	if k.Kind == format.KindInt {
		return format.IntValue(k.Int)
	}
	return format.StrValue(k.Str)
}

// stripQuoteRun matches (Q+)X\1 where Q is ' or ": a run of one quote kind
// on both ends, equal in length, with at least one inner byte. Both runs
// are removed.
func stripQuoteRun(s string) (string, bool) {
	for _, q := range []byte{'\'', '"'} {
		lead := 0
		for lead < len(s) && s[lead] == q {
			lead++
		}
		if lead == 0 {
			continue
		}
		trail := 0
		for trail < len(s)-lead && s[len(s)-1-trail] == q {
			trail++
		}
		if trail == lead && len(s) > 2*lead {
			return s[lead : len(s)-lead], true
		}
	}
	return "", false
}

// compareKeys is the BST comparator. It returns 0 on equal type and value,
// -1 when a is an integer and b a string or when a sorts after b within the
// same type, and 1 otherwise. Lookup and insertion descend to slot 2i+1 on
// 1 and to slot 2i+2 otherwise; the sign convention is part of the on-disk
// contract.
func compareKeys(a, b Key) int {
	if a.Equal(b) {
		return 0
	}
	if a.Kind == format.KindInt && b.Kind == format.KindString {
		return -1
	}
	if a.Kind == b.Kind {
		if a.Kind == format.KindInt {
			if a.Int > b.Int {
				return -1
			}
		} else if strings.Compare(a.Str, b.Str) > 0 {
			return -1
		}
	}
	return 1
}
