package wfp

import (
	"fmt"

	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

// patchABuffer corrects the ACM stop time held in the last 4 bytes of an
// A-file buffer.
//
// The defect window for A-files is bounded: only profiles up to and including
// maxProfile are eligible. Later profiles are left untouched even when the
// stop time decodes before the threshold, because overlapping early-looking
// values outside the window are legitimate.
func patchABuffer(cor epoch.Corrector, buf []byte, profile, maxProfile int) (*bufferResult, error) {
	res := &bufferResult{}

	if len(buf) < epoch.TimestampSize {
		return nil, fmt.Errorf("%w: A-file is %d bytes, need at least %d",
			errs.ErrFileTooShort, len(buf), epoch.TimestampSize)
	}

	if profile > maxProfile {
		return res, nil
	}

	res.patchField(cor, buf, len(buf)-epoch.TimestampSize)

	return res, nil
}
