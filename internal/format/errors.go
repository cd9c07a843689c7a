package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated cell")
	// ErrBadLength indicates a length field outside its permitted range.
	ErrBadLength = errors.New("format: bad length field")
	// ErrBadKind indicates an unknown key or value type tag.
	ErrBadKind = errors.New("format: unknown type tag")
	// ErrInvalidUTF8 indicates a string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("format: string payload is not valid UTF-8")
)
