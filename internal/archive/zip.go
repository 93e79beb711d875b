// Package archive builds the deflate zip archives that carry a project's
// public and private trees through a compiled package.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pcrockett/kin-backup/internal/kinerrors"
)

const copyBufSize = 16 * 1024

// Build walks rootDir and writes every regular file and directory it
// finds into a new zip archive at outputPath, using entry names relative
// to rootDir with forward slashes regardless of host OS.
func Build(rootDir, outputPath string) (retErr error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return kinerrors.NewPathError("create", outputPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = kinerrors.NewPathError("close", outputPath, cerr)
		}
	}()

	w := zip.NewWriter(out)
	defer func() {
		if cerr := w.Close(); cerr != nil && retErr == nil {
			retErr = kinerrors.NewPathError("close", outputPath, cerr)
		}
	}()

	return filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == rootDir {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if info.IsDir() {
			_, err := w.Create(name + "/")
			return err
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", kinerrors.ErrUnsupportedEntry, path)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = name
		header.Method = zip.Deflate

		entry, err := w.CreateHeader(header)
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return kinerrors.NewPathError("open", path, err)
		}
		defer in.Close()

		buf := make([]byte, copyBufSize)
		if _, err := io.CopyBuffer(entry, in, buf); err != nil {
			return kinerrors.NewPathError("copy", path, err)
		}
		return nil
	})
}
