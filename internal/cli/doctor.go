package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/glypha-labs/glypha/internal/config"
	"github.com/glypha-labs/glypha/internal/registry"
	"github.com/glypha-labs/glypha/internal/users"
	"github.com/glypha-labs/glypha/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	doctorCmd.Flags().String("api-url", "", "Base URL of the API (default from api.url)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, seed data and server reachability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := runChecks(cmd.Context(), cmd.OutOrStdout(), doctorChecks(cmd))
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

type check struct {
	name string
	run  func(ctx context.Context) (string, error)
}

func doctorChecks(cmd *cobra.Command) []check {
	return []check{
		{"config file", func(context.Context) (string, error) {
			path := config.FilePath()
			if _, err := os.Stat(path); err != nil {
				if os.IsNotExist(err) {
					return path + " (not created, using defaults)", nil
				}
				return "", err
			}
			return path, nil
		}},
		{"seed file", func(context.Context) (string, error) {
			path := config.Get(config.KeySeedFile)
			if path == "" {
				return "not configured", nil
			}
			inputs, err := registry.LoadSeedFile(path)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s (%d fonts)", path, len(inputs)), nil
		}},
		{"users database", func(ctx context.Context) (string, error) {
			dsn := config.Get(config.KeyUsersDB)
			store, err := users.Open(ctx, dsn)
			if err != nil {
				return "", err
			}
			defer store.Close()
			return dsn, nil
		}},
		{"api server", func(ctx context.Context) (string, error) {
			url := apiURL(cmd)
			v, err := newAPIClient(cmd).ServerVersion(ctx)
			if err != nil {
				return "", err
			}
			ok, err := version.Compatible(buildVersion, v)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", fmt.Errorf("%s runs %s, incompatible with client %s", url, v, buildVersion)
			}
			return fmt.Sprintf("%s (version %s)", url, v), nil
		}},
	}
}

// runChecks prints one line per check and returns the number of failures.
func runChecks(ctx context.Context, w io.Writer, checks []check) int {
	failed := 0
	for _, c := range checks {
		detail, err := c.run(ctx)
		if err != nil {
			failed++
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s: %s\n", c.name, detail)
	}
	return failed
}
