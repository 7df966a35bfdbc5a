package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"dtcheck/internal/library"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tags <darktable-config-dir>",
		Short: "List tags and their usage counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			tags, err := lib.Tags(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, tags)
			}

			rows := make([][]string, 0, len(tags))
			for _, tag := range tags {
				rows = append(rows, []string{
					strconv.FormatInt(tag.ID, 10),
					tag.Name,
					strconv.Itoa(tag.Usage),
				})
			}
			writeRows(cmd,
				[]string{"ID", "Name", "Photos"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit tags as JSON")
	return cmd
}

func newFilmRollsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "film-rolls <darktable-config-dir>",
		Short: "List imported directories and their photo counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := library.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer lib.Close()

			rolls, err := lib.FilmRolls(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, rolls)
			}

			rows := make([][]string, 0, len(rolls))
			for _, roll := range rolls {
				rows = append(rows, []string{
					strconv.FormatInt(roll.ID, 10),
					roll.Directory,
					strconv.Itoa(roll.Photos),
				})
			}
			writeRows(cmd,
				[]string{"ID", "Directory", "Photos"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit film rolls as JSON")
	return cmd
}
