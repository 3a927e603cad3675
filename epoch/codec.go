// Package epoch implements the 4-byte big-endian epoch timestamp codec used
// throughout the McLane profiler file formats, together with the 80-year
// rollover correction applied to defective fields.
//
// The profiler's firmware 5.34 clock bug rolled timestamps back 80 years
// (2020 recorded as 1940). A field is considered defective when its decoded
// instant falls before a threshold date, and is repaired by shifting the
// calendar year forward 80 years while preserving month, day and time of day.
package epoch

import (
	"fmt"
	"math"
	"time"

	"github.com/oceanobservatories/wfp-tools/endian"
	"github.com/oceanobservatories/wfp-tools/errs"
)

const (
	// TimestampSize is the width in bytes of an epoch timestamp field.
	TimestampSize = 4

	// RolloverYears is the calendar-year shift applied to defective fields.
	// McLane's guidance: 1940 + 80 = 2020.
	RolloverYears = 80
)

// DefaultThreshold is the date below which a decoded timestamp is treated as
// defective. Any instant recorded by the profiler before this date is assumed
// to be an 80-year rollback. The value is deployment knowledge (Irminger 6),
// not derivable from the file format itself.
var DefaultThreshold = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)

// Decode interprets the first 4 bytes of b as a big-endian signed 32-bit
// count of whole seconds since 1970-01-01T00:00:00 UTC.
//
// b must be at least TimestampSize bytes long.
func Decode(b []byte) time.Time {
	secs := int32(endian.Instrument().Uint32(b))

	return time.Unix(int64(secs), 0).UTC()
}

// Put encodes t as a big-endian signed 32-bit epoch-second count into the
// first 4 bytes of dst.
//
// Returns errs.ErrTimestampOutOfRange without touching dst when t is not
// representable as a signed 32-bit second count. dst must be at least
// TimestampSize bytes long.
func Put(dst []byte, t time.Time) error {
	secs := t.Unix()
	if secs < math.MinInt32 || secs > math.MaxInt32 {
		return fmt.Errorf("%w: %s", errs.ErrTimestampOutOfRange, t.Format(time.RFC3339))
	}

	endian.Instrument().PutUint32(dst, uint32(int32(secs)))

	return nil
}

// Encode returns the 4-byte big-endian representation of t.
//
// Returns errs.ErrTimestampOutOfRange when t is outside the signed 32-bit
// epoch-second range.
func Encode(t time.Time) ([TimestampSize]byte, error) {
	var b [TimestampSize]byte
	if err := Put(b[:], t); err != nil {
		return b, err
	}

	return b, nil
}

// Corrector decides whether a decoded instant is defective and computes the
// repaired instant. The zero value is not usable; create one with
// NewCorrector or DefaultCorrector.
type Corrector struct {
	threshold time.Time
}

// NewCorrector creates a Corrector that treats instants before threshold as
// defective.
func NewCorrector(threshold time.Time) Corrector {
	return Corrector{threshold: threshold.UTC()}
}

// DefaultCorrector creates a Corrector using DefaultThreshold.
func DefaultCorrector() Corrector {
	return NewCorrector(DefaultThreshold)
}

// Threshold returns the defect threshold date.
func (c Corrector) Threshold() time.Time {
	return c.threshold
}

// NeedsCorrection reports whether t is defective, i.e. strictly before the
// threshold date.
func (c Corrector) NeedsCorrection(t time.Time) bool {
	return t.Before(c.threshold)
}

// Correct returns t shifted forward by RolloverYears calendar years.
//
// The shift is calendar-relative, not a fixed day count: month, day and time
// of day are preserved and only the year changes. A February 29 source date
// landing in a non-leap target year normalizes forward to March 1, per
// time.Time.AddDate semantics.
func (c Corrector) Correct(t time.Time) time.Time {
	return t.AddDate(RolloverYears, 0, 0)
}

// PatchField evaluates the 4-byte timestamp field at the start of field and
// rewrites it in place when it is defective.
//
// Returns true when the field was rewritten. Returns
// errs.ErrTimestampOutOfRange, leaving the bytes untouched, when the
// corrected instant does not fit in a signed 32-bit second count.
func (c Corrector) PatchField(field []byte) (bool, error) {
	t := Decode(field)
	if !c.NeedsCorrection(t) {
		return false, nil
	}

	if err := Put(field, c.Correct(t)); err != nil {
		return false, err
	}

	return true, nil
}
