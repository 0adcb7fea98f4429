package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"montage/internal/assets"
	"montage/internal/config"
	"montage/internal/session"
	"montage/internal/viewport"
)

func newWindowCommand(ctx *commandContext) *cobra.Command {
	var track int
	var scrollLeft, containerWidth, zoom float64
	var pps float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "window <project>",
		Short: "List the clips a viewport must materialize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, args[0], func(sess *session.Session, _ *assets.Catalog, cfg *config.Config) error {
				effectivePPS := pps
				if effectivePPS <= 0 {
					effectivePPS = cfg.Timeline.PixelsPerSecond
				}
				view := viewport.View{
					ScrollLeft:      scrollLeft,
					ContainerWidth:  containerWidth,
					PixelsPerSecond: effectivePPS,
					Zoom:            zoom,
				}
				visible := sess.VisibleClips(track, view)

				if asJSON {
					type jsonClip struct {
						ID    string  `json:"id"`
						Start float64 `json:"startTime"`
						Left  float64 `json:"left"`
						Width float64 `json:"width"`
					}
					clips := make([]jsonClip, 0, len(visible))
					for _, v := range visible {
						clips = append(clips, jsonClip{ID: v.Clip.ID, Start: v.Clip.StartTime, Left: v.Left, Width: v.Width})
					}
					return writeJSON(cmd, map[string]any{"track": track, "clips": clips})
				}

				out := cmd.OutOrStdout()
				if len(visible) == 0 {
					fmt.Fprintln(out, "No clips intersect the viewport")
					return nil
				}
				rows := make([][]string, 0, len(visible))
				for _, v := range visible {
					rows = append(rows, []string{
						shortID(v.Clip.ID),
						typeLabel(string(v.Clip.Type)),
						formatSeconds(v.Clip.StartTime),
						formatPixels(v.Left),
						formatPixels(v.Width),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Type", "Start", "Left", "Width"},
					rows, 2, 3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&track, "track", "t", 0, "Track index to query")
	cmd.Flags().Float64Var(&scrollLeft, "scroll", 0, "Viewport scroll offset in pixels")
	cmd.Flags().Float64Var(&containerWidth, "width", 1280, "Viewport width in pixels")
	cmd.Flags().Float64Var(&pps, "pps", 0, "Pixels per second (defaults to the configured value)")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "Zoom factor")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
