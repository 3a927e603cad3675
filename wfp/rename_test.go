package wfp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
}

func TestNormalizeNames(t *testing.T) {
	t.Run("Controller names are rewritten", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "A1230042.DEC")
		touch(t, dir, "C1230042.DAT")
		touch(t, dir, "E1230042.DAT")
		touch(t, dir, "M1230042.DAT") // motion packs are not renamed
		touch(t, dir, "README.txt")

		renamed, err := NormalizeNames(dir, nil)
		require.NoError(t, err)
		require.Equal(t, 3, renamed)

		for _, want := range []string{"A0000042.DAT", "C0000042.DAT", "E0000042.DAT", "M1230042.DAT", "README.txt"} {
			_, err := os.Stat(filepath.Join(dir, want))
			require.NoError(t, err, want)
		}
		for _, gone := range []string{"A1230042.DEC", "C1230042.DAT", "E1230042.DAT"} {
			_, err := os.Stat(filepath.Join(dir, gone))
			require.True(t, os.IsNotExist(err), gone)
		}
	})

	t.Run("Already normalized names stay put", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "C0000042.DAT")

		renamed, err := NormalizeNames(dir, nil)
		require.NoError(t, err)
		require.Equal(t, 0, renamed)

		_, err = os.Stat(filepath.Join(dir, "C0000042.DAT"))
		require.NoError(t, err)
	})

	t.Run("Existing target is not clobbered", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "E1230042.DAT")
		touch(t, dir, "E0000042.DAT")
		touch(t, dir, "A4560007.DEC")

		renamed, err := NormalizeNames(dir, nil)
		require.Error(t, err)
		require.Equal(t, 1, renamed)

		// The conflicting source and its target both survive.
		got, readErr := os.ReadFile(filepath.Join(dir, "E0000042.DAT"))
		require.NoError(t, readErr)
		require.Equal(t, []byte("E0000042.DAT"), got)
		_, statErr := os.Stat(filepath.Join(dir, "E1230042.DAT"))
		require.NoError(t, statErr)

		_, statErr = os.Stat(filepath.Join(dir, "A0000007.DAT"))
		require.NoError(t, statErr)
	})

	t.Run("Missing directory", func(t *testing.T) {
		_, err := NormalizeNames(filepath.Join(t.TempDir(), "nope"), nil)
		require.Error(t, err)
	})
}
