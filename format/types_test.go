package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileTypePrefix(t *testing.T) {
	require.Equal(t, byte('A'), FileTypeA.Prefix())
	require.Equal(t, byte('C'), FileTypeC.Prefix())
	require.Equal(t, byte('E'), FileTypeE.Prefix())
	require.Equal(t, byte('M'), FileTypeM.Prefix())
	require.Equal(t, "A", FileTypeA.String())
}

func TestPatchResultString(t *testing.T) {
	require.Equal(t, "Patched", ResultPatched.String())
	require.Equal(t, "Unchanged", ResultUnchanged.String())
	require.Equal(t, "FileNotFound", ResultFileNotFound.String())
	require.Equal(t, "Failed", ResultFailed.String())
	require.Equal(t, "Unknown", PatchResult(0xFF).String())
}

func TestParseCompressionType(t *testing.T) {
	cases := map[string]CompressionType{
		"":     CompressionNone,
		"none": CompressionNone,
		"zstd": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	}
	for name, want := range cases {
		got, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}

	_, ok := ParseCompressionType("bzip2")
	require.False(t, ok)
}

func TestBackupExt(t *testing.T) {
	require.Equal(t, ".orig", CompressionNone.BackupExt())
	require.Equal(t, ".orig.zst", CompressionZstd.BackupExt())
	require.Equal(t, ".orig.s2", CompressionS2.BackupExt())
	require.Equal(t, ".orig.lz4", CompressionLZ4.BackupExt())
}
