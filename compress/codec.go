// Package compress provides the compression codecs used for pre-patch backup
// archives of raw instrument files.
//
// Before an instrument file is rewritten in place, the driver can archive the
// original bytes next to it. Raw profiler files are small (a few KB to a few
// hundred KB) and compress well, so the codec choice trades archive size
// against CPU:
//
//   - None: plain copy, no CPU cost
//   - Zstd: best ratio, moderate speed
//   - S2:   balanced ratio and speed
//   - LZ4:  fastest, moderate ratio
package compress

import (
	"fmt"

	"github.com/oceanobservatories/wfp-tools/format"
)

// Compressor compresses a complete in-memory payload.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Returns an error when data is corrupted or was produced by an
	// incompatible codec. The returned slice is newly allocated and owned
	// by the caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
