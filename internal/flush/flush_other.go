//go:build !linux && !freebsd && !darwin

package flush

import "os"

// Sync pushes f's written data to stable storage.
func Sync(f *os.File) error {
	return f.Sync()
}
