package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/assets"
	"montage/internal/config"
	"montage/internal/session"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <project>",
		Short: "Check a project for dangling asset references and overlaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, args[0], func(sess *session.Session, catalog *assets.Catalog, _ *config.Config) error {
				dangling, err := catalog.Dangling(cmd.Context(), sess.Store().Clips())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				healthy := true

				if len(dangling) > 0 {
					healthy = false
					fmt.Fprintln(out, warnLine(
						fmt.Sprintf("%d clip(s) reference assets missing from the catalog", len(dangling)),
						colorize,
					))
					for _, id := range dangling {
						fmt.Fprintf(out, "  %s\n", id)
					}
				}
				for _, track := range sess.Layout().Tracks() {
					if overlaps := sess.Store().Overlaps(track.Index); len(overlaps) > 0 {
						healthy = false
						fmt.Fprintln(out, warnLine(
							fmt.Sprintf("%d overlapping clip pair(s) on %s", len(overlaps), track.Name),
							colorize,
						))
					}
				}

				if healthy {
					fmt.Fprintf(out, "Project %s is healthy: %d clips, no dangling asset references or overlaps\n",
						sess.Name(), sess.Store().Len())
				}
				return nil
			})
		},
	}
}
