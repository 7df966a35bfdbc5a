package main

import (
	"github.com/spf13/cobra"

	"dtcheck/internal/compare"
	"dtcheck/internal/config"
	"dtcheck/internal/logging"
	"dtcheck/internal/report"
	"dtcheck/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var minRating int
	var fields []string

	cmd := &cobra.Command{
		Use:   "scan <darktable-config-dir>",
		Short: "Check catalog metadata against XMP sidecar files",
		Long: `Scan reads library.db and data.db from the given darktable configuration
directory, locates the XMP sidecar next to each managed photo, and reports
every metadata difference between the two. All inputs are opened read-only.

The exit code reflects whether the scan completed, not whether it found
inconsistencies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			opts := scan.Options{
				ConfigDir:        args[0],
				MinRating:        cfg.Scan.MinRating,
				Fields:           enabledFields(cfg),
				SidecarExtension: cfg.Scan.SidecarExtension,
				LockPath:         cfg.LockPath(),
				Logger:           logger,
			}
			if cmd.Flags().Changed("min-rating") {
				opts.MinRating = minRating
			}
			if cmd.Flags().Changed("fields") {
				opts.Fields = fields
			}

			rep, err := scan.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, rep)
			}
			return report.WriteText(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the report as JSON")
	cmd.Flags().IntVar(&minRating, "min-rating", 0, "Skip photos rated below this value (-1 includes rejected)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Comparison fields to check (default: all enabled in config)")
	return cmd
}

// enabledFields applies the configured disabled_fields to the full schema.
func enabledFields(cfg *config.Config) []string {
	disabled := make(map[string]struct{}, len(cfg.Scan.DisabledFields))
	for _, field := range cfg.Scan.DisabledFields {
		disabled[field] = struct{}{}
	}
	var out []string
	for _, field := range compare.FieldNames() {
		if _, ok := disabled[field]; !ok {
			out = append(out, field)
		}
	}
	return out
}
