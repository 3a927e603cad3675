package wfp

import (
	"fmt"

	"github.com/oceanobservatories/wfp-tools/epoch"
)

// bufferResult accumulates the outcome of patching one in-memory file buffer.
//
// Field-level correction failures (a corrected instant that does not fit the
// 4-byte encoding) are collected rather than aborting the buffer, so that
// other defective fields in the same file are still repaired. Structural
// failures (truncated buffer, missing sentinel) are returned as errors by the
// per-type patch functions instead, and the buffer must then be discarded
// unwritten.
type bufferResult struct {
	corrected int
	fieldErrs []error
}

// patchField evaluates the 4-byte timestamp at off and corrects it in place
// when defective. The caller guarantees off+4 is within buf.
func (r *bufferResult) patchField(cor epoch.Corrector, buf []byte, off int) {
	changed, err := cor.PatchField(buf[off : off+epoch.TimestampSize])
	if err != nil {
		r.fieldErrs = append(r.fieldErrs, fmt.Errorf("field at offset %d: %w", off, err))
		return
	}

	if changed {
		r.corrected++
	}
}
