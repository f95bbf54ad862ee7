package cli

import (
	"encoding/json"
	"fmt"

	"github.com/glypha-labs/glypha/internal/branding"
	"github.com/glypha-labs/glypha/internal/version"
	"github.com/spf13/cobra"
)

var (
	versionShort  bool
	versionJSON   bool
	versionServer bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionServer, "server", false, "Also query the server at api.url and check compatibility")
	versionCmd.Flags().String("api-url", "", "Base URL of the API (default from api.url)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := map[string]string{
			"version": buildVersion,
			"commit":  buildCommit,
			"date":    buildDate,
		}

		var compatible bool
		if versionServer {
			serverVersion, err := newAPIClient(cmd).ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("querying server version: %w", err)
			}
			compatible, err = version.Compatible(buildVersion, serverVersion)
			if err != nil {
				return err
			}
			info["server_version"] = serverVersion
			info["compatible"] = fmt.Sprint(compatible)
		}

		if versionJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		if versionServer {
			fmt.Fprintf(out, "server version %s\n", info["server_version"])
			if !compatible {
				fmt.Fprintf(out, "warning: client %s and server %s have different major versions\n", buildVersion, info["server_version"])
			}
		}
		return nil
	},
}
