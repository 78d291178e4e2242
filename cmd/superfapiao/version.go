package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/pkg/updater"
	"github.com/sizuichu/SuperFaPiao/pkg/version"
)

func versionCmd(g *globalFlags) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprint(w, version.GetDetailedVersionInfo())
			if !check {
				return nil
			}

			info, err := updater.NewChecker(g.logger()).CheckForUpdates(cmd.Context())
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if info.IsAvailable {
				fmt.Fprintf(w, "\nVersion %s is available (current %s)\n%s\n", info.LatestVersion, info.CurrentVersion, info.DownloadURL)
			} else {
				fmt.Fprintln(w, "\nYou are running the latest version")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	return cmd
}
