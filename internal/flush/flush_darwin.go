//go:build darwin

package flush

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync pushes f's written data to stable storage.
//
// macOS fsync() only reaches the drive cache; F_FULLFSYNC forces the write
// to the physical disk.
func Sync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	if err != nil {
		// Some filesystems (e.g. SMB mounts) reject F_FULLFSYNC.
		return f.Sync()
	}
	return nil
}
