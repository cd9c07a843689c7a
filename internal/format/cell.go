package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/cellardb/cellar/internal/buf"
)

// Cell is the decoded record of one key/value pair.
//
// Cell layout (big-endian):
//
//	Offset  Size  Description
//	0x00    4     cell_len: total record length in bytes, header included.
//	0x04    4     key_type_len, followed by key_type bytes ("int"|"string").
//	...     4     key_len, followed by key bytes (4 bytes when "int").
//	...     4     value_type_len, followed by value_type bytes
//	              ("int"|"string"|"file").
//	...     4     value_len, followed by value bytes (4 bytes when "int").
type Cell struct {
	Len   int32
	Key   Key
	Value Value
}

// EncodeCell serializes a key/value pair into a fresh cell record.
func EncodeCell(k Key, v Value) []byte {
	keyBytes := k.raw()
	valBytes := v.Raw()
	total := 5*SlotSize + len(k.Kind) + len(keyBytes) + len(v.Kind) + len(valBytes)

	b := make([]byte, 0, total)
	b = buf.AppendI32BE(b, int32(total))
	b = buf.AppendI32BE(b, int32(len(k.Kind)))
	b = append(b, k.Kind...)
	b = buf.AppendI32BE(b, int32(len(keyBytes)))
	b = append(b, keyBytes...)
	b = buf.AppendI32BE(b, int32(len(v.Kind)))
	b = append(b, v.Kind...)
	b = buf.AppendI32BE(b, int32(len(valBytes)))
	b = append(b, valBytes...)
	return b
}

// raw returns the key's payload bytes: 4 big-endian bytes for an integer,
// UTF-8 bytes otherwise.
func (k Key) raw() []byte {
	if k.Kind == KindInt {
		return buf.AppendI32BE(nil, k.Int)
	}
	return []byte(k.Str)
}

// ParseCell decodes the cell record at the start of b. The cell_len field is
// authoritative: decoding never reads past it, and a buffer shorter than the
// declared length is an error.
func ParseCell(b []byte) (Cell, error) {
	if len(b) < SlotSize {
		return Cell{}, fmt.Errorf("cell: %w", ErrTruncated)
	}
	cellLen := buf.I32BE(b)
	if cellLen < MinCellSize || int64(cellLen) > int64(len(b)) {
		return Cell{}, fmt.Errorf("cell: declared length %d: %w", cellLen, ErrBadLength)
	}
	d := decoder{b: b[:cellLen], off: SlotSize}

	keyKind, keyBytes, err := d.field()
	if err != nil {
		return Cell{}, err
	}
	valKind, valBytes, err := d.field()
	if err != nil {
		return Cell{}, err
	}

	c := Cell{Len: cellLen}
	switch keyKind {
	case KindInt:
		if len(keyBytes) != SlotSize {
			return Cell{}, fmt.Errorf("cell: int key of %d bytes: %w", len(keyBytes), ErrBadLength)
		}
		c.Key = IntKey(buf.I32BE(keyBytes))
	case KindString:
		if !utf8.Valid(keyBytes) {
			return Cell{}, fmt.Errorf("cell: key: %w", ErrInvalidUTF8)
		}
		c.Key = StrKey(string(keyBytes))
	default:
		return Cell{}, fmt.Errorf("cell: key type %q: %w", keyKind, ErrBadKind)
	}

	switch valKind {
	case KindInt:
		if len(valBytes) != SlotSize {
			return Cell{}, fmt.Errorf("cell: int value of %d bytes: %w", len(valBytes), ErrBadLength)
		}
		c.Value = IntValue(buf.I32BE(valBytes))
	case KindString:
		if !utf8.Valid(valBytes) {
			return Cell{}, fmt.Errorf("cell: value: %w", ErrInvalidUTF8)
		}
		c.Value = Value{Kind: KindString, Bytes: valBytes}
	case KindFile:
		c.Value = FileValue(valBytes)
	default:
		return Cell{}, fmt.Errorf("cell: value type %q: %w", valKind, ErrBadKind)
	}
	return c, nil
}

// decoder walks a length-bounded cell buffer.
type decoder struct {
	b   []byte
	off int
}

// field reads one (type_len, type, payload_len, payload) group.
func (d *decoder) field() (Kind, []byte, error) {
	kindBytes, err := d.lengthPrefixed()
	if err != nil {
		return "", nil, err
	}
	payload, err := d.lengthPrefixed()
	if err != nil {
		return "", nil, err
	}
	return Kind(kindBytes), payload, nil
}

func (d *decoder) lengthPrefixed() ([]byte, error) {
	word, ok := buf.Slice(d.b, d.off, SlotSize)
	if !ok {
		return nil, fmt.Errorf("cell: %w", ErrTruncated)
	}
	n := buf.I32BE(word)
	if n < 0 {
		return nil, fmt.Errorf("cell: negative length: %w", ErrBadLength)
	}
	d.off += SlotSize
	out, ok := buf.Slice(d.b, d.off, int(n))
	if !ok {
		return nil, fmt.Errorf("cell: %w", ErrTruncated)
	}
	d.off += int(n)
	return out, nil
}
