package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glypha-labs/glypha/internal/config"
	"github.com/glypha-labs/glypha/internal/registry"
	"github.com/glypha-labs/glypha/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr         string
	serveSeedFile     string
	serveSeedDefaults bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from server.addr, \":3000\")")
	serveCmd.Flags().StringVar(&serveSeedFile, "seed", "", "YAML file of fonts to load at start-up")
	serveCmd.Flags().BoolVar(&serveSeedDefaults, "seed-defaults", false, "Load the built-in starter fonts")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the font API server",
	Long: `Run the JSON API over an in-memory font registry. Records live only for the
lifetime of the process; use --seed or --seed-defaults to start with data.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := stringFlagOrConfig(cmd, "addr", serveAddr, config.KeyServerAddr)
	seedFile := stringFlagOrConfig(cmd, "seed", serveSeedFile, config.KeySeedFile)
	seedDefaults := serveSeedDefaults
	if !cmd.Flags().Changed("seed-defaults") {
		seedDefaults = config.GetBool(config.KeySeedDefaults)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat))
	if err != nil {
		return err
	}

	reg, err := buildRegistry(seedFile, seedDefaults)
	if err != nil {
		return err
	}
	logger.Info("registry ready", "fonts", reg.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(reg, server.WithLogger(logger), server.WithVersion(buildVersion))
	return srv.ListenAndServe(ctx, addr)
}

// buildRegistry creates the registry and applies the configured seeds. The
// built-in seed goes first so file entries get the later ids.
func buildRegistry(seedFile string, seedDefaults bool) (*registry.Registry, error) {
	reg := registry.New()

	if seedDefaults {
		inputs, err := registry.DefaultSeed()
		if err != nil {
			return nil, err
		}
		if _, err := reg.Seed(inputs); err != nil {
			return nil, fmt.Errorf("seeding built-in fonts: %w", err)
		}
	}

	if seedFile != "" {
		inputs, err := registry.LoadSeedFile(seedFile)
		if err != nil {
			return nil, err
		}
		if n, err := reg.Seed(inputs); err != nil {
			return nil, fmt.Errorf("seeding from %s (entry %d): %w", seedFile, n, err)
		}
	}

	return reg, nil
}

// stringFlagOrConfig returns the flag value when it was set explicitly, and
// the config value for key otherwise.
func stringFlagOrConfig(cmd *cobra.Command, flag, value, key string) string {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return config.Get(key)
}
