package format

type (
	// FileType identifies one of the four raw file variants produced by the
	// McLane Wire-Following Profiler for each profile sequence number.
	FileType uint8

	// PatchResult is the outcome of running a patcher against one file path.
	PatchResult uint8

	// CompressionType selects the codec used for pre-patch backup archives.
	CompressionType uint8
)

const (
	FileTypeA FileType = iota // FileTypeA holds ACM (current meter) data; the stop time is the last field.
	FileTypeC                 // FileTypeC holds CTD data terminated by an all-0xFF sentinel run.
	FileTypeE                 // FileTypeE holds engineering records of mixed stride.
	FileTypeM                 // FileTypeM holds motion pack records of fixed stride.
)

const (
	ResultPatched      PatchResult = iota // ResultPatched means at least one field was corrected and the file rewritten.
	ResultUnchanged                       // ResultUnchanged means no field matched the correction predicate; file untouched.
	ResultFileNotFound                    // ResultFileNotFound means the file does not exist; expected with sparse profiles.
	ResultFailed                          // ResultFailed means the file exists but could not be patched.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores backups as plain copies.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// AllFileTypes lists the four variants in the order the driver visits them.
var AllFileTypes = []FileType{FileTypeA, FileTypeC, FileTypeE, FileTypeM}

// Prefix returns the one-letter file name prefix for the file type.
func (t FileType) Prefix() byte {
	switch t {
	case FileTypeA:
		return 'A'
	case FileTypeC:
		return 'C'
	case FileTypeE:
		return 'E'
	case FileTypeM:
		return 'M'
	default:
		return '?'
	}
}

func (t FileType) String() string {
	return string(t.Prefix())
}

func (r PatchResult) String() string {
	switch r {
	case ResultPatched:
		return "Patched"
	case ResultUnchanged:
		return "Unchanged"
	case ResultFileNotFound:
		return "FileNotFound"
	case ResultFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a user-facing codec name to its CompressionType.
// The empty string maps to CompressionNone.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return CompressionNone, false
	}
}

// BackupExt returns the file name extension appended to backup archives
// written with this compression type.
func (c CompressionType) BackupExt() string {
	switch c {
	case CompressionZstd:
		return ".orig.zst"
	case CompressionS2:
		return ".orig.s2"
	case CompressionLZ4:
		return ".orig.lz4"
	default:
		return ".orig"
	}
}
