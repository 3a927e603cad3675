package wfp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

// Files downloaded through the Subsurface Mooring controller carry a 3-digit
// inductive ID ahead of the 4-digit profile number, and A-files arrive with a
// .DEC extension. The McLane unpacker expects a plain zero-padded 7-digit
// sequence and a .DAT extension. Motion pack (M) files are recovered
// separately and already follow the unpacker convention.
var renameRules = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`^A\d{3}(\d{4})\.DEC$`), "A000$1.DAT"},
	{regexp.MustCompile(`^C\d{3}(\d{4})\.DAT$`), "C000$1.DAT"},
	{regexp.MustCompile(`^E\d{3}(\d{4})\.DAT$`), "E000$1.DAT"},
}

// NormalizeNames renames controller-downloaded instrument files in dir to the
// unpacker naming convention and returns the number of files renamed.
//
// A rename whose target already exists is skipped and reported; remaining
// files are still processed, with the per-file errors joined into the
// returned error. A nil logger disables progress logging.
func NormalizeNames(dir string, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read directory %s: %w", dir, err)
	}

	renamed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		for _, rule := range renameRules {
			if !rule.pattern.MatchString(name) {
				continue
			}

			newName := rule.pattern.ReplaceAllString(name, rule.repl)
			if newName == name {
				break
			}

			oldPath := filepath.Join(dir, name)
			newPath := filepath.Join(dir, newName)

			if _, err := os.Stat(newPath); err == nil {
				errs = append(errs, fmt.Errorf("rename %s: target %s already exists", name, newName))
				break
			}

			if err := os.Rename(oldPath, newPath); err != nil {
				errs = append(errs, err)
				break
			}

			logger.Info("renamed",
				zap.String("from", name),
				zap.String("to", newName),
			)
			renamed++

			break
		}
	}

	return renamed, errors.Join(errs...)
}
