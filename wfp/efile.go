package wfp

import (
	"fmt"

	"github.com/oceanobservatories/wfp-tools/endian"
	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

// patchEBuffer corrects all timestamp fields of an E-file buffer: the two
// header fields, every record in the mixed-stride record stream, and the
// trailer fields after the terminator when present.
//
// The record stream starts at offset 24. Each record is either a message
// record (a reserved 4-byte code, restart timestamp at byte 8, 16 bytes
// total) or a plain telemetry record (timestamp first, 30 bytes total). The
// walk must reproduce these strides exactly or every later field offset
// desynchronizes, so a record that would read past the end of the buffer is
// a structural failure rather than a best-effort stop.
func patchEBuffer(cor epoch.Corrector, buf []byte) (*bufferResult, error) {
	res := &bufferResult{}
	engine := endian.Instrument()

	if len(buf) < eRecordStreamOffset {
		return nil, fmt.Errorf("%w: E-file is %d bytes, need at least %d",
			errs.ErrFileTooShort, len(buf), eRecordStreamOffset)
	}

	res.patchField(cor, buf, eSensorStartOffset)
	res.patchField(cor, buf, eVehicleStartOffset)

	idx := eRecordStreamOffset
	sawTerminator := false
	for idx < len(buf) {
		if len(buf)-idx < 4 {
			return nil, fmt.Errorf("%w: E-file record stream ends mid-field at offset %d",
				errs.ErrTruncatedRecord, idx)
		}

		marker := engine.Uint32(buf[idx : idx+4])
		if marker == eTerminator {
			sawTerminator = true
			break
		}

		if marker >= eMessageCodeMin && marker <= eMessageCodeMax {
			if idx+eMessageTimeOffset+epoch.TimestampSize > len(buf) {
				return nil, fmt.Errorf("%w: E-file message record at offset %d",
					errs.ErrTruncatedRecord, idx)
			}
			res.patchField(cor, buf, idx+eMessageTimeOffset)
			idx += eMessageRecordSize

			continue
		}

		res.patchField(cor, buf, idx)
		idx += eTelemetryRecordSize
	}

	if !sawTerminator {
		return res, nil
	}

	// Trailer: vehicle end then sensor end, each corrected only when its
	// 4 bytes are fully within the buffer.
	trailer := idx + eTrailerSkip
	if trailer+epoch.TimestampSize <= len(buf) {
		res.patchField(cor, buf, trailer)
	}
	if trailer+2*epoch.TimestampSize <= len(buf) {
		res.patchField(cor, buf, trailer+epoch.TimestampSize)
	}

	return res, nil
}
