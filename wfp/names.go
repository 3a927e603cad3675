package wfp

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/oceanobservatories/wfp-tools/format"
)

var profileNameRe = regexp.MustCompile(`^([ACEM])([0-9]{7})\.DAT$`)

// FileName builds the canonical file name for a file type and profile
// sequence number, e.g. FileName(format.FileTypeA, 178) == "A0000178.DAT".
func FileName(t format.FileType, profile int) string {
	return fmt.Sprintf("%c%0*d%s", t.Prefix(), SeqDigits, profile, FileExt)
}

// ParseFileName extracts the file type and profile sequence number from a
// file name following the <prefix><7-digit-sequence>.DAT convention.
// Returns false for any other name.
func ParseFileName(name string) (format.FileType, int, bool) {
	m := profileNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}

	var t format.FileType
	switch m[1][0] {
	case 'A':
		t = format.FileTypeA
	case 'C':
		t = format.FileTypeC
	case 'E':
		t = format.FileTypeE
	case 'M':
		t = format.FileTypeM
	}

	profile, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}

	return t, profile, true
}
