// Package wfp repairs the 80-year timestamp rollback in raw data recovered
// from a McLane Wire-Following Profiler running firmware 5.34.
//
// The firmware bug rolled the clock back 80 years after the 2019 to 2020
// transition, so raw files record year 1940 where they mean 2020. McLane's
// recommended repair is to add 80 years to every timestamp that decodes
// before the deployment's defect threshold.
//
// The profiler writes four file variants per profile sequence number,
// distinguished by a one-letter prefix:
//
//   - A-files: ACM current meter data; the stop time is the last 4 bytes.
//     Only profiles inside the known defect window are corrected.
//   - C-files: CTD data; start and stop times follow an 11-byte 0xFF
//     end-of-data sentinel.
//   - E-files: engineering data; two header fields, a record stream of
//     mixed stride, and trailer fields after an all-0xFF terminator.
//   - M-files: motion pack data; fixed-stride records declared by a leading
//     2-byte record size, plus trailer fields.
//
// All timestamp fields are 4-byte big-endian signed epoch seconds. Patches
// preserve buffer length exactly, and a corrected field decodes after the
// threshold, so running the patcher twice is idempotent.
//
// Typical use:
//
//	patcher, err := wfp.New(dir, wfp.WithBackup(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	report, err := patcher.Run()
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report.Summary())
package wfp
