// Package compile builds a backup package for one recipient: a public
// zip, an encrypted private archive, a manifest of wrapped keys for
// every other recipient, rendered instructions, and a bundled recovery
// binary.
package compile

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pcrockett/kin-backup/internal/archive"
	"github.com/pcrockett/kin-backup/internal/backup"
	"github.com/pcrockett/kin-backup/internal/kcrypto"
	"github.com/pcrockett/kin-backup/internal/kinlog"
	"github.com/pcrockett/kin-backup/internal/project"
	"github.com/pcrockett/kin-backup/internal/render"
	"github.com/pcrockett/kin-backup/internal/seal"
)

// Request describes one compile run: a project, a recipient to compile
// for, and where the resulting package should be written.
type Request struct {
	ProjectDir string
	DestDir    string
	Recipient  string
}

// context carries state threaded between compile phases.
type context struct {
	req          *Request
	runID        string
	proj         *project.Directory
	settings     *project.Settings
	peers        []project.Recipient
	wrappedKeys  []kcrypto.WrappedKey
	pkg          *backup.Package
	tempPrivZip  string
}

// Run compiles a package for req.Recipient into req.DestDir. Any phase
// failure aborts the run immediately; the destination directory may be
// left partially populated and should be discarded by the caller.
func Run(req *Request) error {
	ctx := &context{req: req, runID: uuid.New().String()}
	log := kinlog.With(ctx.runID)

	phases := []struct {
		name string
		fn   func(*context) error
	}{
		{"resolveProject", resolveProject},
		{"wrapKeysForPeers", wrapKeysForPeers},
		{"initManifest", initManifest},
		{"buildPublicArchive", buildPublicArchive},
		{"buildAndEncryptPrivateArchive", buildAndEncryptPrivateArchive},
		{"renderInstructions", renderInstructions},
		{"placeDecryptBinary", placeDecryptBinary},
		{"sealOutputs", sealOutputs},
	}

	for _, phase := range phases {
		log.Debug().Str("phase", phase.name).Msg("compile phase starting")
		if err := phase.fn(ctx); err != nil {
			log.Debug().Str("phase", phase.name).Err(err).Msg("compile phase failed")
			cleanup(ctx)
			return fmt.Errorf("%s: %w", phase.name, err)
		}
	}

	cleanup(ctx)
	return nil
}

func resolveProject(ctx *context) error {
	dir := ctx.req.ProjectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	ctx.proj = project.Open(dir)

	settings, err := project.ReadSettings(ctx.proj.ConfigFile())
	if err != nil {
		return err
	}
	ctx.settings = settings
	return nil
}

func wrapKeysForPeers(ctx *context) error {
	peers, err := ctx.settings.GetPeers(ctx.req.Recipient)
	if err != nil {
		return err
	}
	ctx.peers = peers

	key, err := ctx.settings.MasterKey()
	if err != nil {
		return err
	}
	defer key.Close()

	wrapped := make([]kcrypto.WrappedKey, len(peers))
	for i, peer := range peers {
		wk, err := key.WrapFor(peer.Passphrase)
		if err != nil {
			return err
		}
		wrapped[i] = wk
	}
	ctx.wrappedKeys = wrapped
	return nil
}

func initManifest(ctx *context) error {
	pkg, err := backup.Init(ctx.req.DestDir, ctx.wrappedKeys)
	if err != nil {
		return err
	}
	ctx.pkg = pkg
	return nil
}

func buildPublicArchive(ctx *context) error {
	return archive.Build(ctx.proj.PublicDir(), ctx.pkg.PublicArchive())
}

func buildAndEncryptPrivateArchive(ctx *context) error {
	tempPath := filepath.Join(ctx.proj.ConfigDir(), "temp")
	if err := os.RemoveAll(tempPath); err != nil {
		return err
	}
	ctx.tempPrivZip = tempPath

	if err := archive.Build(ctx.proj.PrivateDir(), tempPath); err != nil {
		return err
	}

	key, err := ctx.settings.MasterKey()
	if err != nil {
		return err
	}
	defer key.Close()

	in, err := os.Open(tempPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(ctx.pkg.PrivateArchive(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	return kcrypto.Encrypt(key.Bytes(), in, out)
}

func renderInstructions(ctx *context) error {
	recipient, err := ctx.settings.GetRecipient(ctx.req.Recipient)
	if err != nil {
		return err
	}

	peers := make([]render.Peer, len(ctx.peers))
	for i, p := range ctx.peers {
		peers[i] = render.Peer{Name: p.Name}
	}

	model := render.InstructionModel{
		Owner:      ctx.settings.Owner,
		Recipient:  recipient.Name,
		Passphrase: recipient.Passphrase,
		Peers:      peers,
	}

	mdTemplatePath := filepath.Join(ctx.proj.ConfigDir(), "overview.md")
	return render.Instructions(mdTemplatePath, model, ctx.pkg.ReadmePath())
}

// placeDecryptBinary copies the running binary's recovery counterpart
// into the package. It first looks next to the current executable (so a
// dev build finds a sibling kindecrypt binary without installing
// anything), falling back to a $PATH lookup.
func placeDecryptBinary(ctx *context) error {
	dest, err := ctx.pkg.DecryptExePath()
	if err != nil {
		return err
	}

	src, err := locateDecryptBinary()
	if err != nil {
		return err
	}

	return copyFile(src, dest)
}

func locateDecryptBinary() (string, error) {
	name := decryptBinaryName()

	if self, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(self), name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return exec.LookPath(name)
}

func decryptBinaryName() string {
	if os.PathSeparator == '\\' {
		return "kindecrypt.exe"
	}
	return "kindecrypt"
}

func sealOutputs(ctx *context) error {
	dest, err := ctx.pkg.DecryptExePath()
	if err != nil {
		return err
	}

	sealed := []struct {
		path       string
		executable bool
	}{
		{ctx.pkg.ConfigFile(), false},
		{ctx.pkg.PublicArchive(), false},
		{ctx.pkg.PrivateArchive(), false},
		{ctx.pkg.ReadmePath(), false},
		{dest, true},
	}
	for _, s := range sealed {
		if err := seal.Path(s.path, s.executable); err != nil {
			return err
		}
	}
	return nil
}

func cleanup(ctx *context) {
	if ctx.tempPrivZip != "" {
		_ = os.Remove(ctx.tempPrivZip)
	}
}

func copyFile(src, dst string) (retErr error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0o111)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return nil
}
