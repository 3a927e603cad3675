package wfp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oceanobservatories/wfp-tools/epoch"
	"github.com/oceanobservatories/wfp-tools/errs"
)

func TestPatchABuffer(t *testing.T) {
	cor := epoch.DefaultCorrector()

	newBuf := func(t *testing.T) []byte {
		buf := make([]byte, 64)
		fillJunk(buf)
		putTS(t, buf, len(buf)-epoch.TimestampSize, defectTime)

		return buf
	}

	t.Run("Profile inside window is corrected", func(t *testing.T) {
		buf := newBuf(t)
		before := append([]byte(nil), buf...)

		res, err := patchABuffer(cor, buf, DefaultMaxAProfile, DefaultMaxAProfile)
		require.NoError(t, err)
		require.Equal(t, 1, res.corrected)
		require.Empty(t, res.fieldErrs)
		require.Equal(t, fixedTime, tsAt(buf, len(buf)-4))

		// Everything but the last 4 bytes is untouched.
		require.Equal(t, before[:len(buf)-4], buf[:len(buf)-4])
		require.Len(t, buf, len(before))
	})

	t.Run("Profile past window is left alone", func(t *testing.T) {
		buf := newBuf(t)
		before := append([]byte(nil), buf...)

		res, err := patchABuffer(cor, buf, DefaultMaxAProfile+1, DefaultMaxAProfile)
		require.NoError(t, err)
		require.Equal(t, 0, res.corrected)
		require.Equal(t, before, buf)
	})

	t.Run("Healthy stop time is left alone", func(t *testing.T) {
		buf := newBuf(t)
		putTS(t, buf, len(buf)-4, healthyTime)

		res, err := patchABuffer(cor, buf, 0, DefaultMaxAProfile)
		require.NoError(t, err)
		require.Equal(t, 0, res.corrected)
		require.Equal(t, healthyTime, tsAt(buf, len(buf)-4))
	})

	t.Run("File shorter than one field", func(t *testing.T) {
		_, err := patchABuffer(cor, []byte{0x01, 0x02}, 0, DefaultMaxAProfile)
		require.ErrorIs(t, err, errs.ErrFileTooShort)
	})

	t.Run("Exactly one field", func(t *testing.T) {
		buf := make([]byte, epoch.TimestampSize)
		putTS(t, buf, 0, defectTime)

		res, err := patchABuffer(cor, buf, 10, DefaultMaxAProfile)
		require.NoError(t, err)
		require.Equal(t, 1, res.corrected)
		require.Equal(t, fixedTime, tsAt(buf, 0))
	})
}
