package wfp

import (
	"fmt"
	"strings"

	"github.com/oceanobservatories/wfp-tools/format"
)

// Counts aggregates patch outcomes for one file type.
type Counts struct {
	Patched   int
	Unchanged int
	Missing   int
	Failed    int

	// FieldErrors counts files where one or more individual field
	// corrections were skipped (out-of-range after the 80-year shift)
	// while the file itself was still processed. Such files are also
	// counted under Patched or Unchanged depending on their other fields.
	FieldErrors int
}

// Report aggregates the outcomes of one directory run.
type Report struct {
	// DryRun records whether the run evaluated corrections without
	// writing them.
	DryRun bool

	// MaxProfile is the highest profile sequence number found in the
	// directory, or -1 when no instrument files were present.
	MaxProfile int

	// FieldsCorrected is the total count of timestamp fields corrected
	// across all files.
	FieldsCorrected int

	byType map[format.FileType]*Counts

	// files keeps the outcomes worth inspecting afterwards: every patched
	// or failed file, and every file that carries a field-level error.
	// Clean unchanged files and missing files are only counted.
	files []FileOutcome
}

// NewReport creates an empty report.
func NewReport(dryRun bool) *Report {
	r := &Report{
		DryRun:     dryRun,
		MaxProfile: -1,
		byType:     make(map[format.FileType]*Counts, len(format.AllFileTypes)),
	}
	for _, t := range format.AllFileTypes {
		r.byType[t] = &Counts{}
	}

	return r
}

// Add records one file outcome.
func (r *Report) Add(out FileOutcome) {
	c := r.byType[out.Type]
	if c == nil {
		c = &Counts{}
		r.byType[out.Type] = c
	}

	switch out.Result {
	case format.ResultPatched:
		c.Patched++
		r.FieldsCorrected += out.FieldsCorrected
		r.files = append(r.files, out)
	case format.ResultUnchanged:
		c.Unchanged++
		if out.Err != nil {
			// No field corrected, but corrections were skipped; the
			// error must survive into the report.
			r.files = append(r.files, out)
		}
	case format.ResultFileNotFound:
		c.Missing++
	case format.ResultFailed:
		c.Failed++
		r.files = append(r.files, out)
	}

	if out.Err != nil && out.Result != format.ResultFailed {
		c.FieldErrors++
	}
}

// TypeCounts returns the aggregated counts for one file type.
func (r *Report) TypeCounts(t format.FileType) Counts {
	if c, ok := r.byType[t]; ok {
		return *c
	}

	return Counts{}
}

// Totals returns the counts summed over all four file types.
func (r *Report) Totals() Counts {
	var total Counts
	for _, c := range r.byType {
		total.Patched += c.Patched
		total.Unchanged += c.Unchanged
		total.Missing += c.Missing
		total.Failed += c.Failed
		total.FieldErrors += c.FieldErrors
	}

	return total
}

// Patched returns the outcomes of all patched files.
func (r *Report) Patched() []FileOutcome {
	return r.selectResult(format.ResultPatched)
}

// Failures returns the outcomes of all failed files.
func (r *Report) Failures() []FileOutcome {
	return r.selectResult(format.ResultFailed)
}

// Errored returns every outcome carrying an error: failed files as well as
// patched or unchanged files where individual field corrections were
// skipped.
func (r *Report) Errored() []FileOutcome {
	var out []FileOutcome
	for _, f := range r.files {
		if f.Err != nil {
			out = append(out, f)
		}
	}

	return out
}

func (r *Report) selectResult(want format.PatchResult) []FileOutcome {
	var out []FileOutcome
	for _, f := range r.files {
		if f.Result == want {
			out = append(out, f)
		}
	}

	return out
}

// Summary renders a human-readable per-type summary suitable for a CLI or
// log line block.
func (r *Report) Summary() string {
	var sb strings.Builder

	if r.DryRun {
		sb.WriteString("dry-run: no files were modified\n")
	}

	if r.MaxProfile < 0 {
		sb.WriteString("no instrument files found\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "profiles 0..%d\n", r.MaxProfile)
	for _, t := range format.AllFileTypes {
		c := r.TypeCounts(t)
		fmt.Fprintf(&sb, "%s-files: %d patched, %d unchanged, %d missing, %d failed",
			t, c.Patched, c.Unchanged, c.Missing, c.Failed)
		if c.FieldErrors > 0 {
			fmt.Fprintf(&sb, ", %d with field errors", c.FieldErrors)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d timestamp fields corrected\n", r.FieldsCorrected)

	return sb.String()
}
