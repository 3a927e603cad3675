package wfp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceanobservatories/wfp-tools/endian"
	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

func newMFile(t *testing.T, recSize, totalLen int) []byte {
	t.Helper()

	buf := make([]byte, totalLen)
	fillJunk(buf)
	endian.Instrument().PutUint16(buf[:mRecordSizeWidth], uint16(recSize))

	return buf
}

func TestPatchMBuffer(t *testing.T) {
	cor := epoch.DefaultCorrector()

	t.Run("Fixed stride walk and trailer", func(t *testing.T) {
		// Stride 16: records at 2, 18 and 34 are visited while more than
		// 64 bytes remain past the cursor, then one stride is skipped and
		// the trailer starts at 66.
		const recSize = 16
		buf := newMFile(t, recSize, 102)
		for _, off := range []int{2, 18, 34} {
			putTS(t, buf, off, defectTime)
		}
		putTS(t, buf, 66, defectTime) // motion start
		putTS(t, buf, 70, defectTime) // motion end

		before := append([]byte(nil), buf...)

		res, err := patchMBuffer(cor, buf)
		require.NoError(t, err)
		require.Equal(t, 5, res.corrected)
		for _, off := range []int{2, 18, 34, 66, 70} {
			require.Equal(t, fixedTime, tsAt(buf, off), "offset %d", off)
		}

		// Record bodies between the timestamp fields stay untouched.
		require.Equal(t, before[6:18], buf[6:18])
		require.Equal(t, before[38:66], buf[38:66])
		require.Equal(t, before[74:], buf[74:])
		require.Len(t, buf, len(before))
	})

	t.Run("Healthy records are left alone", func(t *testing.T) {
		buf := newMFile(t, 16, 102)
		for _, off := range []int{2, 18, 34, 66, 70} {
			putTS(t, buf, off, healthyTime)
		}
		before := append([]byte(nil), buf...)

		res, err := patchMBuffer(cor, buf)
		require.NoError(t, err)
		require.Equal(t, 0, res.corrected)
		require.Equal(t, before, buf)
	})

	t.Run("Partial trailer corrects only in-range fields", func(t *testing.T) {
		// Stride 16, 24 bytes total: no record qualifies for the walk,
		// the cursor skips to 18, motion start fits, motion end does not.
		buf := newMFile(t, 16, 24)
		putTS(t, buf, 18, defectTime)
		tail := append([]byte(nil), buf[22:]...)

		res, err := patchMBuffer(cor, buf)
		require.NoError(t, err)
		require.Equal(t, 1, res.corrected)
		require.Equal(t, fixedTime, tsAt(buf, 18))
		require.Equal(t, tail, buf[22:])
	})

	t.Run("Record size zero", func(t *testing.T) {
		buf := newMFile(t, 0, 128)

		_, err := patchMBuffer(cor, buf)
		require.ErrorIs(t, err, errs.ErrInvalidRecordSize)
	})

	t.Run("Record size smaller than a timestamp", func(t *testing.T) {
		buf := newMFile(t, 3, 128)

		_, err := patchMBuffer(cor, buf)
		require.ErrorIs(t, err, errs.ErrInvalidRecordSize)
	})

	t.Run("File shorter than the record size field", func(t *testing.T) {
		_, err := patchMBuffer(cor, []byte{0x00})
		require.ErrorIs(t, err, errs.ErrFileTooShort)
	})
}
