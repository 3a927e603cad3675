package wfp

const (
	// FileExt is the extension shared by all unpacked profiler data files.
	FileExt = ".DAT"

	// SeqDigits is the zero-padded width of the profile sequence number
	// embedded in every file name, e.g. A0000178.DAT.
	SeqDigits = 7

	// DefaultMaxAProfile is the last profile sequence number inside the
	// A-file defect window. The firmware 5.34 clock bug began at profile
	// 178 on the Irminger 6 deployment; A-file stop times from later
	// profiles must not be touched even when they decode before the
	// threshold. Deployment knowledge, not derivable from the format.
	DefaultMaxAProfile = 178
)

// C-file layout. The data region is terminated by an 11-byte run of 0xFF;
// the two timestamp fields sit at fixed offsets past the sentinel start.
const (
	cSentinelLen     = 11
	cStartTimeOffset = 11 // sensor start time, relative to sentinel start
	cStopTimeOffset  = 15 // sensor stop time, relative to sentinel start
)

// E-file layout. Two fixed header fields, then a record stream of mixed
// stride starting at offset 24, then an optional trailer after the
// all-0xFF terminator.
const (
	eSensorStartOffset  = 16 // absolute
	eVehicleStartOffset = 20 // absolute
	eRecordStreamOffset = 24 // absolute, first record

	// A message record is a 4-byte message code followed by a 12-byte
	// body; the restart timestamp is the middle 4 bytes of the body.
	eMessageRecordSize = 16
	eMessageTimeOffset = 8 // relative to record start

	// A plain telemetry record leads with its timestamp.
	eTelemetryRecordSize = 30

	// The trailer skips the 4-byte terminator plus 4 reserved bytes
	// before the vehicle-end and sensor-end fields.
	eTrailerSkip = 8
)

// E-file record stream markers, read as big-endian uint32.
const (
	eTerminator = 0xFFFFFFFF // all-0xFF marker ending the record stream

	// The five reserved profiling message codes, 0xFFFFFFFA through
	// 0xFFFFFFFE. Anything in this range opens a message record.
	eMessageCodeMin = 0xFFFFFFFA
	eMessageCodeMax = 0xFFFFFFFE
)

// M-file layout. A leading 2-byte unsigned record size fixes the stride of
// the motion pack records that follow; each record leads with its timestamp.
const (
	mRecordSizeWidth = 2

	// The walk stops once the bytes remaining past the cursor drop to
	// this count or below; one further stride then lands the cursor on
	// the trailer holding the motion start and stop times.
	mWalkTailLen = 64
)
