package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dtcheck/internal/library"
)

func newPhotosCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var limit int

	cmd := &cobra.Command{
		Use:   "photos <darktable-config-dir>",
		Short: "List photos in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			photos, err := lib.Photos(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(photos) > limit {
				photos = photos[:limit]
			}

			if jsonOut {
				return writeJSON(cmd, photos)
			}

			rows := make([][]string, 0, len(photos))
			for _, photo := range photos {
				rows = append(rows, []string{
					strconv.FormatInt(photo.ID, 10),
					photo.Filepath,
					strconv.Itoa(photo.Version),
					formatRating(photo.Rating),
					strings.Join(photo.Tags, ", "),
					formatLabels(photo.ColorLabels),
					yesNo(photo.HasHistory()),
				})
			}
			writeRows(cmd,
				[]string{"ID", "Path", "Version", "Rating", "Tags", "Labels", "History"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit photos as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of photos to list (0 = all)")
	return cmd
}

func formatRating(rating int) string {
	switch {
	case rating == library.RatingRejected:
		return "rejected"
	case rating == 0:
		return "unrated"
	default:
		return strings.Repeat("*", rating)
	}
}

func formatLabels(labels []library.ColorLabel) string {
	if len(labels) == 0 {
		return ""
	}
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.String())
	}
	return strings.Join(names, ", ")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
