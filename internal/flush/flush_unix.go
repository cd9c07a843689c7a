//go:build linux || freebsd

package flush

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync pushes f's written data to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees: the file
// size never changes after creation, so the metadata fsync would add is not
// needed.
func Sync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
