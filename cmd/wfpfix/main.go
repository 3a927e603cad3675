// Command wfpfix repairs and renames raw McLane Wire-Following Profiler data
// files recovered from a deployment.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oceanobservatories/wfp-tools/format"
	"github.com/oceanobservatories/wfp-tools/internal/config"
	"github.com/oceanobservatories/wfp-tools/wfp"
)

var (
	// Global flags
	verbose bool

	// fix flags
	cfgPath     string
	threshold   string
	maxAProfile int
	backupCodec string
	dryRun      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wfpfix",
	Short: "Wire-Following Profiler raw data repair tools",
	Long: `wfpfix operates on the raw A/C/E/M data files recovered from a McLane
Wire-Following Profiler deployment.

The fix command corrects the 80-year timestamp rollback caused by the
firmware 5.34 clock bug; the rename command normalizes controller-downloaded
file names to the McLane unpacker convention.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var fixCmd = &cobra.Command{
	Use:   "fix [directory]",
	Short: "Correct rolled-back timestamps in raw instrument files",
	Long: `Scans the directory for files named A<seq>.DAT, C<seq>.DAT, E<seq>.DAT and
M<seq>.DAT (7-digit zero-padded profile sequence), then walks every profile
from 0 to the highest found, correcting each timestamp field that decodes
before the threshold date by adding 80 calendar years.

Patched files are replaced atomically; unchanged files are not rewritten.
Missing profile numbers are normal and skipped silently.

Example:
  wfpfix fix /data/irminger6/wfp --backup zstd`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Normalize controller-downloaded file names",
	Long: `Renames files downloaded through the Subsurface Mooring controller to the
McLane unpacker convention: the 3-digit inductive ID is replaced with zeros
and A-file extensions change from .DEC to .DAT.

Example:
  wfpfix rename /data/irminger6/download`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func runFix(cmd *cobra.Command, args []string) error {
	opts := []wfp.Option{wfp.WithLogger(logger)}

	var cfg *config.Config
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}

	// Config file values first, explicitly set flags override them.
	if cfg != nil {
		if cfg.Threshold != "" {
			t, err := cfg.ThresholdTime()
			if err != nil {
				return err
			}
			opts = append(opts, wfp.WithThreshold(t))
		}
		if cfg.MaxAProfile != nil {
			opts = append(opts, wfp.WithMaxAProfile(*cfg.MaxAProfile))
		}
		if cfg.Backup != "" {
			ct, _ := format.ParseCompressionType(cfg.Backup)
			opts = append(opts, wfp.WithBackup(ct))
		}
		if cfg.DryRun {
			opts = append(opts, wfp.WithDryRun(true))
		}
	}

	if cmd.Flags().Changed("threshold") {
		t, err := time.ParseInLocation("2006-01-02", threshold, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid --threshold %q: want YYYY-MM-DD", threshold)
		}
		opts = append(opts, wfp.WithThreshold(t))
	}
	if cmd.Flags().Changed("max-a-profile") {
		opts = append(opts, wfp.WithMaxAProfile(maxAProfile))
	}
	if cmd.Flags().Changed("backup") {
		ct, ok := format.ParseCompressionType(backupCodec)
		if !ok {
			return fmt.Errorf("unknown --backup codec %q: want none, zstd, s2 or lz4", backupCodec)
		}
		opts = append(opts, wfp.WithBackup(ct))
	}
	if dryRun {
		opts = append(opts, wfp.WithDryRun(true))
	}

	patcher, err := wfp.New(args[0], opts...)
	if err != nil {
		return err
	}

	report, err := patcher.Run()
	if err != nil {
		return err
	}

	fmt.Print(report.Summary())

	if failed := report.Totals().Failed; failed > 0 {
		return fmt.Errorf("%d files failed to patch", failed)
	}

	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	renamed, err := wfp.NormalizeNames(args[0], logger)
	fmt.Printf("%d files renamed\n", renamed)

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	fixCmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	fixCmd.Flags().StringVar(&threshold, "threshold", "2018-01-01", "defect threshold date (YYYY-MM-DD)")
	fixCmd.Flags().IntVar(&maxAProfile, "max-a-profile", wfp.DefaultMaxAProfile, "last profile eligible for A-file correction")
	fixCmd.Flags().StringVar(&backupCodec, "backup", "", "archive originals before patching (none, zstd, s2, lz4)")
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report corrections without writing")

	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(renameCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
