package wfp

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/oceanobservatories/wfp-tools/compress"
	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/format"
	"github.com/oceanobservatories/wfp-tools/internal/options"
)

// Patcher corrects rolled-back timestamps in the raw A/C/E/M files of one
// deployment directory.
//
// A Patcher owns each file's byte buffer exclusively for the duration of its
// patch operation: the file is fully read, patched in memory, and atomically
// rewritten before the next file is touched. Unchanged files are never
// rewritten.
type Patcher struct {
	dir         string
	corrector   epoch.Corrector
	maxAProfile int
	dryRun      bool
	backup      bool
	backupCodec compress.Codec
	backupExt   string
	logger      *zap.Logger
}

// Option configures a Patcher.
type Option = options.Option[*Patcher]

// New creates a Patcher for the given deployment directory.
//
// Defaults: epoch.DefaultThreshold as the defect threshold,
// DefaultMaxAProfile as the A-file window boundary, no backups, no dry-run,
// and a no-op logger.
func New(dir string, opts ...Option) (*Patcher, error) {
	p := &Patcher{
		dir:         dir,
		corrector:   epoch.DefaultCorrector(),
		maxAProfile: DefaultMaxAProfile,
		logger:      zap.NewNop(),
	}

	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// FileOutcome describes the result of patching one file path.
type FileOutcome struct {
	Path            string
	Type            format.FileType
	Profile         int
	Result          format.PatchResult
	FieldsCorrected int

	// BeforeSum and AfterSum are xxHash64 digests of the file contents
	// before and after patching, for audit logs. Both are zero when the
	// file was missing; equal when the file was unchanged.
	BeforeSum uint64
	AfterSum  uint64

	// Err carries a structural failure (the file was not written) or
	// joined field-level correction failures (the file may still have
	// been written with its other fields corrected).
	Err error
}

// PatchFile patches the file for one file type and profile sequence number.
//
// A missing file is a normal condition (profile numbering is sparse) and
// yields ResultFileNotFound without error. Structural failures yield
// ResultFailed and leave the file untouched on disk.
func (p *Patcher) PatchFile(t format.FileType, profile int) FileOutcome {
	out := FileOutcome{
		Path:    filepath.Join(p.dir, FileName(t, profile)),
		Type:    t,
		Profile: profile,
	}

	buf, err := os.ReadFile(out.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.Result = format.ResultFileNotFound
			return out
		}

		out.Result = format.ResultFailed
		out.Err = err

		return out
	}

	out.BeforeSum = xxhash.Sum64(buf)
	out.AfterSum = out.BeforeSum

	var orig []byte
	if p.backup {
		orig = bytes.Clone(buf)
	}

	res, err := p.patchBuffer(t, buf, profile)
	if err != nil {
		out.Result = format.ResultFailed
		out.Err = err

		return out
	}

	out.FieldsCorrected = res.corrected
	if len(res.fieldErrs) > 0 {
		out.Err = errors.Join(res.fieldErrs...)
	}

	if res.corrected == 0 {
		out.Result = format.ResultUnchanged
		return out
	}

	out.Result = format.ResultPatched
	out.AfterSum = xxhash.Sum64(buf)

	if p.dryRun {
		return out
	}

	if p.backup {
		if err := p.writeBackup(out.Path, orig); err != nil {
			out.Result = format.ResultFailed
			out.Err = errors.Join(out.Err, err)

			return out
		}
	}

	if err := writeFileAtomic(out.Path, buf); err != nil {
		out.Result = format.ResultFailed
		out.Err = errors.Join(out.Err, err)

		return out
	}

	return out
}

func (p *Patcher) patchBuffer(t format.FileType, buf []byte, profile int) (*bufferResult, error) {
	switch t {
	case format.FileTypeA:
		return patchABuffer(p.corrector, buf, profile, p.maxAProfile)
	case format.FileTypeC:
		return patchCBuffer(p.corrector, buf)
	case format.FileTypeE:
		return patchEBuffer(p.corrector, buf)
	case format.FileTypeM:
		return patchMBuffer(p.corrector, buf)
	default:
		return nil, fmt.Errorf("unknown file type %q", t)
	}
}

// writeBackup archives the original file bytes next to path before the file
// is overwritten. An existing backup is never replaced: the first backup is
// the true original, and a rerun after a partial batch must not clobber it.
func (p *Patcher) writeBackup(path string, orig []byte) error {
	backupPath := path + p.backupExt
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}

	compressed, err := p.backupCodec.Compress(orig)
	if err != nil {
		return fmt.Errorf("compress backup for %s: %w", path, err)
	}

	if err := os.WriteFile(backupPath, compressed, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	return nil
}

// writeFileAtomic replaces the file at path with data by writing a temporary
// file in the same directory and renaming it over the original, so a failed
// write can never leave a half-written instrument file. The original file
// mode is preserved.
func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return err
	}

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
