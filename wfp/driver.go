package wfp

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/oceanobservatories/wfp-tools/format"
)

// Run patches every instrument file in the Patcher's directory.
//
// The directory is scanned for files matching the <prefix><7-digit>.DAT
// convention to find the highest profile sequence number, then every profile
// from 0 through that maximum is visited for each of the four file types in
// turn. Missing files are skipped silently; per-file failures are recorded
// in the report and never stop the batch.
//
// Run returns an error only for unrecoverable conditions, such as the
// directory being unreadable. A directory without any matching files yields
// an empty report and no error.
func (p *Patcher) Run() (*Report, error) {
	maxProfile, found, err := p.maxProfile()
	if err != nil {
		return nil, err
	}

	report := NewReport(p.dryRun)
	if !found {
		p.logger.Warn("no instrument files found", zap.String("dir", p.dir))
		return report, nil
	}
	report.MaxProfile = maxProfile

	p.logger.Info("starting timestamp correction",
		zap.String("dir", p.dir),
		zap.Int("max_profile", maxProfile),
		zap.Time("threshold", p.corrector.Threshold()),
		zap.Int("max_a_profile", p.maxAProfile),
		zap.Bool("dry_run", p.dryRun),
	)

	for profile := 0; profile <= maxProfile; profile++ {
		for _, t := range format.AllFileTypes {
			out := p.PatchFile(t, profile)
			report.Add(out)
			p.logOutcome(out)
		}
	}

	totals := report.Totals()
	p.logger.Info("timestamp correction finished",
		zap.Int("patched", totals.Patched),
		zap.Int("unchanged", totals.Unchanged),
		zap.Int("missing", totals.Missing),
		zap.Int("failed", totals.Failed),
		zap.Int("field_error_files", totals.FieldErrors),
		zap.Int("fields_corrected", report.FieldsCorrected),
	)

	return report, nil
}

// maxProfile scans the directory for instrument files and returns the
// highest profile sequence number present. found is false when the
// directory holds no matching files.
func (p *Patcher) maxProfile() (maxProfile int, found bool, err error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return 0, false, fmt.Errorf("read directory %s: %w", p.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		_, profile, ok := ParseFileName(entry.Name())
		if !ok {
			continue
		}

		if !found || profile > maxProfile {
			maxProfile = profile
		}
		found = true
	}

	return maxProfile, found, nil
}

func (p *Patcher) logOutcome(out FileOutcome) {
	switch out.Result {
	case format.ResultPatched:
		fields := []zap.Field{
			zap.String("file", out.Path),
			zap.Int("fields_corrected", out.FieldsCorrected),
			zap.Uint64("before_xxh64", out.BeforeSum),
			zap.Uint64("after_xxh64", out.AfterSum),
		}
		if out.Err != nil {
			// Some fields failed to correct but the rest were written.
			fields = append(fields, zap.Error(out.Err))
			p.logger.Warn("patched with field errors", fields...)

			return
		}
		p.logger.Info("patched", fields...)
	case format.ResultFailed:
		p.logger.Error("patch failed",
			zap.String("file", out.Path),
			zap.Error(out.Err),
		)
	case format.ResultFileNotFound:
		p.logger.Debug("file not present", zap.String("file", out.Path))
	case format.ResultUnchanged:
		if out.Err != nil {
			// Nothing was written, but corrections were skipped.
			p.logger.Warn("field corrections skipped",
				zap.String("file", out.Path),
				zap.Error(out.Err),
			)

			return
		}
		p.logger.Debug("no defective fields", zap.String("file", out.Path))
	}
}
