package format

import (
	"strconv"

	"github.com/cellardb/cellar/internal/buf"
)

// Kind is the on-disk type tag of a key or value payload.
type Kind string

// The three payload kinds. Keys are restricted to KindInt and KindString;
// values may additionally be KindFile (an opaque byte blob).
const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindFile   Kind = "file"
)

// Key is a normalized key: a signed 32-bit integer or a UTF-8 string.
type Key struct {
	Kind Kind
	Int  int32
	Str  string
}

// IntKey builds an integer key.
func IntKey(v int32) Key { return Key{Kind: KindInt, Int: v} }

// StrKey builds a string key.
func StrKey(s string) Key { return Key{Kind: KindString, Str: s} }

// Equal reports whether two keys have the same kind and payload.
func (k Key) Equal(o Key) bool {
	if k.Kind != o.Kind {
		return false
	}
	if k.Kind == KindInt {
		return k.Int == o.Int
	}
	return k.Str == o.Str
}

// String renders the key the way the CLI displays it.
func (k Key) String() string {
	if k.Kind == KindInt {
		return strconv.FormatInt(int64(k.Int), 10)
	}
	return k.Str
}

// Value is a stored value: an integer, a UTF-8 string, or a file blob.
type Value struct {
	Kind  Kind
	Int   int32
	Bytes []byte
}

// IntValue builds an integer value.
func IntValue(v int32) Value { return Value{Kind: KindInt, Int: v} }

// StrValue builds a string value.
func StrValue(s string) Value { return Value{Kind: KindString, Bytes: []byte(s)} }

// FileValue builds a file value holding b verbatim.
func FileValue(b []byte) Value { return Value{Kind: KindFile, Bytes: b} }

// String renders the value the way the CLI displays it.
func (v Value) String() string {
	if v.Kind == KindInt {
		return strconv.FormatInt(int64(v.Int), 10)
	}
	return string(v.Bytes)
}

// Raw returns the value's byte representation: 4 big-endian bytes for an
// integer, the payload bytes otherwise.
func (v Value) Raw() []byte {
	if v.Kind == KindInt {
		return buf.AppendI32BE(nil, v.Int)
	}
	return v.Bytes
}
