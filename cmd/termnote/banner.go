package main

import (
	"fmt"
	"os"

	"termnote/pkg/banner"
	"termnote/pkg/version"

	"github.com/spf13/cobra"
)

const defaultBannerTitle = "🐵 termnote"

func defaultBannerInfo() banner.Info {
	return banner.Info{
		Title:   defaultBannerTitle,
		Version: version.Version,
		Commit:  version.ShortCommit(),
		Tagline: banner.PickTagline(banner.TaglineOptions{Getenv: os.Getenv}),
	}
}

func newBannerCmd(a *app) *cobra.Command {
	var (
		title   string
		tagline string
		art     bool
	)

	cmd := &cobra.Command{
		Use:   "banner",
		Short: "Print the termnote banner line",
		Long: `Print the banner line. Without --tagline the tagline is picked from a
pool, with holiday taglines on their dates; set TERMNOTE_TAGLINE_INDEX to pin one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := defaultBannerInfo()
			info.Title = title
			if tagline != "" {
				info.Tagline = tagline
			}
			rich := a.rich(cmd)

			out := cmd.OutOrStdout()
			if art {
				if _, err := fmt.Fprintln(out, banner.FormatArt(rich)); err != nil {
					return fmt.Errorf("failed to write banner: %w", err)
				}
			}
			line := banner.FormatLine(info, banner.Options{
				Columns: a.terminalColumns(cmd),
				Rich:    rich,
			})
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("failed to write banner: %w", err)
			}
			a.bannerShown = true
			a.logger.Debug("rendered banner", "tagline", info.Tagline, "art", art)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", defaultBannerTitle, "banner title, led by an icon")
	cmd.Flags().StringVar(&tagline, "tagline", "", "tagline shown after the version (default: picked from the pool)")
	cmd.Flags().BoolVar(&art, "art", false, "print the block-letter art above the banner line")
	return cmd
}
