package wfp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oceanobservatories/wfp-tools/epoch"
)

// Fixture instants. defectTime sits inside the rollback window and corrects
// to fixedTime; healthyTime is after the threshold and must never change.
var (
	defectTime  = time.Date(1940, 3, 15, 6, 30, 0, 0, time.UTC)
	fixedTime   = time.Date(2020, 3, 15, 6, 30, 0, 0, time.UTC)
	healthyTime = time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)

	// overflowTime decodes before the threshold, but its +80-year
	// correction (2097) does not fit a signed 32-bit second count, so
	// the field correction must be skipped and reported.
	overflowTime = time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)
)

// putTS encodes ts into buf at off.
func putTS(t *testing.T, buf []byte, off int, ts time.Time) {
	t.Helper()
	require.NoError(t, epoch.Put(buf[off:off+epoch.TimestampSize], ts))
}

// tsAt decodes the timestamp field at off.
func tsAt(buf []byte, off int) time.Time {
	return epoch.Decode(buf[off : off+epoch.TimestampSize])
}

// fillJunk writes a deterministic non-0xFF pattern over buf so that
// untouched regions can be compared after patching.
func fillJunk(buf []byte) {
	for i := range buf {
		buf[i] = byte(0x10 + i%0x40)
	}
}
