// Package seal marks compiled package files read-only so a recipient
// does not casually modify or delete evidence of tampering.
package seal

import (
	"os"
	"runtime"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

// Path marks the file or directory at path read-only for owner, group,
// and others by setting its mode outright. Pass executable true for
// directories (and any executable file) to get 0o555, keeping the
// traversal/execute bits; false gives 0o444, which also clears any
// execute bits the path had.
//
// On Windows this is a no-op: POSIX permission bits don't carry the same
// meaning there, and chmod on Windows can't express the owner/group/other
// distinction this function's semantics depend on.
func Path(path string, executable bool) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	mode := os.FileMode(0o444)
	if executable {
		mode = 0o555
	}

	if err := os.Chmod(path, mode); err != nil {
		return kinerrors.NewPathError("chmod", path, err)
	}
	return nil
}
