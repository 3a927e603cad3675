package wfp

import (
	"fmt"

	"github.com/oceanobservatories/wfp-tools/endian"
	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

// patchMBuffer corrects the motion pack record timestamps of an M-file
// buffer, and the motion start and stop times in the trailer when present.
//
// The leading 2-byte unsigned field fixes the record stride. Records lead
// with their timestamp; the walk stops once 64 bytes or fewer remain past
// the cursor, then skips one further stride to land on the trailer. A
// declared stride too small to hold a timestamp would never advance past
// its own field and is rejected as a structural failure.
func patchMBuffer(cor epoch.Corrector, buf []byte) (*bufferResult, error) {
	res := &bufferResult{}

	if len(buf) < mRecordSizeWidth {
		return nil, fmt.Errorf("%w: M-file is %d bytes, need at least %d",
			errs.ErrFileTooShort, len(buf), mRecordSizeWidth)
	}

	recSize := int(endian.Instrument().Uint16(buf[:mRecordSizeWidth]))
	if recSize < epoch.TimestampSize {
		return nil, fmt.Errorf("%w: declared record size %d, need at least %d",
			errs.ErrInvalidRecordSize, recSize, epoch.TimestampSize)
	}

	idx := mRecordSizeWidth
	for len(buf)-idx > mWalkTailLen {
		res.patchField(cor, buf, idx)
		idx += recSize
	}
	idx += recSize

	// Trailer: motion start then motion end, each corrected only when its
	// 4 bytes are fully within the buffer.
	if idx+epoch.TimestampSize <= len(buf) {
		res.patchField(cor, buf, idx)
	}
	if idx+2*epoch.TimestampSize <= len(buf) {
		res.patchField(cor, buf, idx+epoch.TimestampSize)
	}

	return res, nil
}
