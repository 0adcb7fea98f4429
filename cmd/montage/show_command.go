package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/assets"
	"montage/internal/config"
	"montage/internal/preview"
	"montage/internal/project"
	"montage/internal/session"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <project>",
		Short: "Display a project's timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, args[0], func(sess *session.Session, _ *assets.Catalog, _ *config.Config) error {
				if asJSON {
					return writeShowJSON(cmd, sess)
				}
				return printShow(cmd, sess)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func writeShowJSON(cmd *cobra.Command, sess *session.Session) error {
	clips := sess.Store().Clips()
	records := make([]project.ClipRecord, 0, len(clips))
	for _, clip := range clips {
		record, err := project.EncodeClip(clip)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	return writeJSON(cmd, map[string]any{
		"project": sess.Name(),
		"clips":   records,
	})
}

func printShow(cmd *cobra.Command, sess *session.Session) error {
	out := cmd.OutOrStdout()
	clips := sess.Store().Clips()
	if len(clips) == 0 {
		fmt.Fprintf(out, "Project %s has no clips\n", sess.Name())
		return nil
	}

	rows := make([][]string, 0, len(clips))
	for _, clip := range clips {
		lane := fmt.Sprintf("track %d", clip.Track)
		if track, ok := sess.Layout().Get(clip.Track); ok {
			lane = track.Name
		}
		descriptor, _ := sess.Describe(clip.ID)
		rows = append(rows, []string{
			shortID(clip.ID),
			lane,
			typeLabel(string(clip.Type)),
			formatSeconds(clip.StartTime),
			formatSeconds(clip.Duration),
			formatSeconds(clip.End()),
			describeSummary(descriptor),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"ID", "Track", "Type", "Start", "Duration", "End", "Preview"},
		rows, 3, 4, 5,
	))

	colorize := shouldColorize(out)
	for _, track := range sess.Layout().Tracks() {
		if overlaps := sess.Store().Overlaps(track.Index); len(overlaps) > 0 {
			message := fmt.Sprintf("%d overlapping clip pair(s) on %s", len(overlaps), track.Name)
			fmt.Fprintln(out, warnLine(message, colorize))
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describeSummary(descriptor preview.Descriptor) string {
	switch descriptor.Kind {
	case preview.KindCode:
		if descriptor.Language != "" {
			return "code (" + descriptor.Language + ")"
		}
		return "code"
	case preview.KindVisual:
		if descriptor.IsVideo {
			return "visual (video)"
		}
		return "visual"
	case preview.KindNarration:
		return fmt.Sprintf("narration (vol %.2f)", descriptor.Volume)
	case preview.KindYou:
		if descriptor.Corner != "" {
			return "you (" + descriptor.Corner + ")"
		}
		return "you"
	default:
		name := strings.TrimSpace(descriptor.Name)
		if name != "" {
			return name
		}
		return string(descriptor.Kind)
	}
}
