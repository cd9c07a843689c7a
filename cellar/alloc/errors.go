package alloc

import "errors"

var (
	// ErrTooBig indicates a request larger than the whole data region.
	ErrTooBig = errors.New("alloc: payload exceeds data region capacity")

	// ErrNoSpace indicates the residual data region cannot hold the request.
	ErrNoSpace = errors.New("alloc: data region exhausted")

	// ErrCorruptPointer indicates a free-pointer below the data region start.
	ErrCorruptPointer = errors.New("alloc: free-pointer below data region")
)
