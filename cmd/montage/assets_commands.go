package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"montage/internal/assets"
	"montage/internal/timeline"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage the media asset catalog",
	}

	assetsCmd.AddCommand(newAssetsListCommand(ctx))
	assetsCmd.AddCommand(newAssetsAddCommand(ctx))
	assetsCmd.AddCommand(newAssetsRemoveCommand(ctx))

	return assetsCmd
}

func (c *commandContext) withCatalog(fn func(*assets.Catalog) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	catalog, err := assets.Open(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()
	return fn(catalog)
}

func newAssetsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(catalog *assets.Catalog) error {
				list, err := catalog.List(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, map[string]any{"assets": list})
				}

				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "Catalog is empty")
					return nil
				}
				rows := make([][]string, 0, len(list))
				for _, asset := range list {
					duration := ""
					if asset.Duration > 0 {
						duration = formatSeconds(asset.Duration)
					}
					dimensions := ""
					if asset.Width > 0 && asset.Height > 0 {
						dimensions = fmt.Sprintf("%dx%d", asset.Width, asset.Height)
					}
					rows = append(rows, []string{
						shortID(asset.ID),
						asset.Name,
						typeLabel(string(asset.Type)),
						duration,
						dimensions,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Name", "Type", "Duration", "Dimensions"},
					rows, 3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newAssetsAddCommand(ctx *commandContext) *cobra.Command {
	var assetType string
	var mimeType string
	var duration float64
	var width, height int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a media asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(catalog *assets.Catalog) error {
				asset, err := catalog.Add(cmd.Context(), timeline.MediaAsset{
					Name:     strings.TrimSpace(args[0]),
					Type:     timeline.AssetType(assetType),
					MimeType: mimeType,
					Duration: duration,
					Width:    width,
					Height:   height,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s as %s\n", asset.Name, asset.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&assetType, "type", "video", "Asset type (video, audio, image)")
	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Intrinsic duration in seconds")
	cmd.Flags().IntVar(&width, "width", 0, "Pixel width")
	cmd.Flags().IntVar(&height, "height", 0, "Pixel height")
	return cmd
}

func newAssetsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(catalog *assets.Catalog) error {
				removed, err := catalog.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("asset %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}
