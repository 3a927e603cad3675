// Package errs defines the sentinel errors shared across the wfp-tools packages.
//
// All errors are created with errors.New and are safe to compare with errors.Is
// after being wrapped with fmt.Errorf("%w", ...).
package errs

import "errors"

var (
	// ErrFileTooShort indicates a file is shorter than the minimum length
	// required to hold the fields its type defines.
	ErrFileTooShort = errors.New("file too short for expected fields")

	// ErrMissingSentinel indicates a C-file does not contain the 11-byte
	// 0xFF end-of-data sentinel run.
	ErrMissingSentinel = errors.New("end-of-data sentinel not found")

	// ErrTruncatedRecord indicates a record walk ran past the end of the
	// buffer before reaching a terminator.
	ErrTruncatedRecord = errors.New("record truncated at end of buffer")

	// ErrInvalidRecordSize indicates an M-file declares a record size too
	// small to hold a timestamp field.
	ErrInvalidRecordSize = errors.New("invalid record size")

	// ErrTimestampOutOfRange indicates a corrected timestamp does not fit
	// in a signed 32-bit second count.
	ErrTimestampOutOfRange = errors.New("timestamp out of int32 epoch range")

	// ErrInvalidProfileName indicates a file name does not follow the
	// <prefix><7-digit-sequence>.DAT convention.
	ErrInvalidProfileName = errors.New("invalid profile file name")

	// ErrInvalidCompressionType indicates an unknown backup compression codec.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
