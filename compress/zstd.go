package compress

// ZstdCompressor compresses backup archives with Zstandard. It gives the best
// ratio of the built-in codecs and is the right default for long-term
// retention of original instrument files.
//
// The implementation is selected at build time: cgo builds use valyala/gozstd
// (libzstd bindings), non-cgo builds fall back to the pure-Go
// klauspost/compress/zstd. The two produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
