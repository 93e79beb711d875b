// Package restore implements the decrypt side of a kin-backup package:
// given a package directory and a passphrase, find the matching wrapped
// key and stream-decrypt the private archive to a destination file.
package restore

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pcrockett/kin-backup/internal/backup"
	"github.com/pcrockett/kin-backup/internal/kcrypto"
	"github.com/pcrockett/kin-backup/internal/kinerrors"
	"github.com/pcrockett/kin-backup/internal/kinlog"
)

// Request describes one recovery run: where the package lives, where to
// write the recovered archive, and the passphrase to try.
type Request struct {
	BackupDir  string
	DestFile   string
	Passphrase string
}

type context struct {
	req *Request
	pkg *backup.Package
}

// Run recovers a package's private archive to req.DestFile, which must
// not already exist. A failed trial unwrap is surfaced as
// kinerrors.ErrNoMatchingKey so the CLI layer can report a plain "wrong
// passphrase" message instead of a generic I/O error.
func Run(req *Request) error {
	ctx := &context{req: req}
	log := kinlog.With(uuid.New().String())

	phases := []struct {
		name string
		fn   func(*context) error
	}{
		{"resolvePackage", resolvePackage},
		{"decryptPrivateArchive", decryptPrivateArchive},
	}

	for _, phase := range phases {
		log.Debug().Str("phase", phase.name).Msg("decrypt phase starting")
		if err := phase.fn(ctx); err != nil {
			log.Debug().Str("phase", phase.name).Err(err).Msg("decrypt phase failed")
			return fmt.Errorf("%s: %w", phase.name, err)
		}
	}

	return nil
}

func resolvePackage(ctx *context) error {
	dir := ctx.req.BackupDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}
	ctx.pkg = backup.Open(dir)
	return nil
}

func decryptPrivateArchive(ctx *context) (retErr error) {
	key, err := ctx.pkg.DecryptMasterKey(ctx.req.Passphrase)
	if err != nil {
		return err
	}
	defer key.Close()

	if _, err := os.Stat(ctx.req.DestFile); err == nil {
		return kinerrors.NewPathError("create", ctx.req.DestFile, kinerrors.ErrDestinationExists)
	} else if !os.IsNotExist(err) {
		return kinerrors.NewPathError("stat", ctx.req.DestFile, err)
	}

	in, err := os.Open(ctx.pkg.PrivateArchive())
	if err != nil {
		return kinerrors.NewPathError("open", ctx.pkg.PrivateArchive(), err)
	}
	defer in.Close()

	out, err := os.OpenFile(ctx.req.DestFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return kinerrors.NewPathError("create", ctx.req.DestFile, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = kinerrors.NewPathError("close", ctx.req.DestFile, cerr)
		}
		if retErr != nil {
			_ = os.Remove(ctx.req.DestFile)
		}
	}()

	return kcrypto.Decrypt(key.Bytes(), in, out)
}
