package wfp

import (
	"bytes"
	"fmt"

	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

var cSentinel = bytes.Repeat([]byte{0xFF}, cSentinelLen)

// patchCBuffer corrects the sensor start and stop times of a C-file buffer.
//
// The data region ends at an 11-byte 0xFF sentinel run; the two timestamp
// fields sit back to back at fixed offsets past the sentinel start. A buffer
// without the sentinel, or too short to hold both fields after it, is a
// structural failure and must not be written back.
func patchCBuffer(cor epoch.Corrector, buf []byte) (*bufferResult, error) {
	res := &bufferResult{}

	idx := bytes.Index(buf, cSentinel)
	if idx < 0 {
		return nil, errs.ErrMissingSentinel
	}

	if idx+cStopTimeOffset+epoch.TimestampSize > len(buf) {
		return nil, fmt.Errorf("%w: C-file ends %d bytes after sentinel, need %d",
			errs.ErrFileTooShort, len(buf)-idx, cStopTimeOffset+epoch.TimestampSize)
	}

	res.patchField(cor, buf, idx+cStartTimeOffset)
	res.patchField(cor, buf, idx+cStopTimeOffset)

	return res, nil
}
