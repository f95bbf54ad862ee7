package cli

import (
	"fmt"

	"github.com/glypha-labs/glypha/internal/config"
	"github.com/glypha-labs/glypha/internal/users"
	"github.com/spf13/cobra"
)

var (
	adminDB       string
	adminName     string
	adminEmail    string
	adminPassword string
)

func init() {
	adminCreateCmd.Flags().StringVar(&adminDB, "db", "", "Path to the users database (default from users.db)")
	adminCreateCmd.Flags().StringVar(&adminName, "name", users.DefaultAdminName, "Display name")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", users.DefaultAdminEmail, "Login email")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Password (required)")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the credential store",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the administrator account if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn := stringFlagOrConfig(cmd, "db", adminDB, config.KeyUsersDB)

		store, err := users.Open(cmd.Context(), dsn)
		if err != nil {
			return fmt.Errorf("opening users database: %w", err)
		}
		defer store.Close()

		u, created, err := users.EnsureAdmin(cmd.Context(), store, users.AdminSpec{
			Name:     adminName,
			Email:    adminEmail,
			Password: adminPassword,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !created {
			fmt.Fprintf(out, "Admin user %s already exists\n", u.Email)
			return nil
		}
		fmt.Fprintf(out, "Created admin user %d: %s <%s> (role %s)\n", u.ID, u.Name, u.Email, u.Role)
		return nil
	},
}
