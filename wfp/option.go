package wfp

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oceanobservatories/wfp-tools/compress"
	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
	"github.com/oceanobservatories/wfp-tools/format"
	"github.com/oceanobservatories/wfp-tools/internal/options"
)

// WithThreshold overrides the defect threshold date. Timestamps decoding
// before threshold are treated as 80-year rollbacks.
func WithThreshold(threshold time.Time) Option {
	return options.New(func(p *Patcher) error {
		if threshold.IsZero() {
			return errors.New("threshold must not be the zero time")
		}

		p.corrector = epoch.NewCorrector(threshold)

		return nil
	})
}

// WithMaxAProfile overrides the last profile sequence number eligible for
// A-file correction.
func WithMaxAProfile(profile int) Option {
	return options.New(func(p *Patcher) error {
		if profile < 0 {
			return fmt.Errorf("max A-file profile must be non-negative, got %d", profile)
		}

		p.maxAProfile = profile

		return nil
	})
}

// WithDryRun makes the Patcher evaluate and report corrections without
// writing anything to disk.
func WithDryRun(enabled bool) Option {
	return options.NoError(func(p *Patcher) {
		p.dryRun = enabled
	})
}

// WithBackup makes the Patcher archive the original bytes of every patched
// file next to it, compressed with the given codec, before overwriting.
func WithBackup(compressionType format.CompressionType) Option {
	return options.New(func(p *Patcher) error {
		codec, err := compress.GetCodec(compressionType)
		if err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
		}

		p.backup = true
		p.backupCodec = codec
		p.backupExt = compressionType.BackupExt()

		return nil
	})
}

// WithLogger attaches a zap logger for per-file progress and audit logging.
// A nil logger falls back to the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(p *Patcher) {
		if logger == nil {
			logger = zap.NewNop()
		}

		p.logger = logger
	})
}
