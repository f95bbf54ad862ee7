package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/glypha-labs/glypha/internal/client"
	"github.com/glypha-labs/glypha/internal/config"
	"github.com/glypha-labs/glypha/internal/font"
	"github.com/spf13/cobra"
)

var (
	fontsAPIURL string
	fontsJSON   bool

	fontName     string
	fontSize     string
	fontStyle    string
	fontWeight   string
	fontCategory string
)

func init() {
	fontsCmd.PersistentFlags().StringVar(&fontsAPIURL, "api-url", "", "Base URL of the API (default from api.url)")
	fontsCmd.PersistentFlags().BoolVar(&fontsJSON, "json", false, "Output in JSON format")

	for _, c := range []*cobra.Command{fontsCreateCmd, fontsUpdateCmd} {
		c.Flags().StringVar(&fontName, "name", "", "Font family name")
		c.Flags().StringVar(&fontSize, "size", "", "Size, e.g. 16px")
		c.Flags().StringVar(&fontStyle, "style", "", "Style ("+joinValues(font.Styles)+")")
		c.Flags().StringVar(&fontWeight, "weight", "", "Weight ("+joinValues(font.Weights)+")")
		c.Flags().StringVar(&fontCategory, "category", "", "Category ("+joinValues(font.Categories)+")")
	}

	fontsCmd.AddCommand(fontsListCmd, fontsGetCmd, fontsCreateCmd, fontsUpdateCmd, fontsDeleteCmd)
	rootCmd.AddCommand(fontsCmd)
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Manage fonts on a running server",
}

var fontsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all fonts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fonts, err := newAPIClient(cmd).ListFonts(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing fonts: %w", err)
		}
		if fontsJSON {
			return printJSON(cmd.OutOrStdout(), fonts)
		}
		if len(fonts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No fonts yet.")
			return nil
		}
		return printFontTable(cmd.OutOrStdout(), fonts)
	},
}

var fontsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one font",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		rec, err := newAPIClient(cmd).GetFont(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("fetching font %d: %w", id, err)
		}
		return printFont(cmd.OutOrStdout(), rec)
	},
}

var fontsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a font",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := font.Input{
			Name:     fontName,
			Size:     fontSize,
			Style:    fontStyle,
			Weight:   fontWeight,
			Category: fontCategory,
		}
		warnUnknownValues(cmd.ErrOrStderr(), fontStyle, fontWeight, fontCategory)
		rec, err := newAPIClient(cmd).CreateFont(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("creating font: %w", err)
		}
		if fontsJSON {
			return printJSON(cmd.OutOrStdout(), rec)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created font %d (%s)\n", rec.ID, rec.Name)
		return nil
	},
}

var fontsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of a font",
	Long:  `Change the fields given as flags; fields without a flag keep their value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p := patchFromFlags(cmd)
		if p.Empty() {
			return fmt.Errorf("nothing to update: pass at least one of --name, --size, --style, --weight, --category")
		}
		warnUnknownValues(cmd.ErrOrStderr(), fontStyle, fontWeight, fontCategory)
		rec, err := newAPIClient(cmd).UpdateFont(cmd.Context(), id, p)
		if err != nil {
			return fmt.Errorf("updating font %d: %w", id, err)
		}
		if fontsJSON {
			return printJSON(cmd.OutOrStdout(), rec)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated font %d (%s)\n", rec.ID, rec.Name)
		return nil
	},
}

var fontsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a font",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		rec, err := newAPIClient(cmd).DeleteFont(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("deleting font %d: %w", id, err)
		}
		if fontsJSON {
			return printJSON(cmd.OutOrStdout(), rec)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted font %d (%s)\n", rec.ID, rec.Name)
		return nil
	},
}

func newAPIClient(cmd *cobra.Command) *client.Client {
	return client.New(apiURL(cmd))
}

func apiURL(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("api-url"); f != nil && f.Changed {
		return f.Value.String()
	}
	return config.Get(config.KeyAPIURL)
}

func patchFromFlags(cmd *cobra.Command) font.Patch {
	var p font.Patch
	set := func(flag string, value string, dst **string) {
		if cmd.Flags().Changed(flag) {
			v := value
			*dst = &v
		}
	}
	set("name", fontName, &p.Name)
	set("size", fontSize, &p.Size)
	set("style", fontStyle, &p.Style)
	set("weight", fontWeight, &p.Weight)
	set("category", fontCategory, &p.Category)
	return p
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// warnUnknownValues notes values the server will store as given rather than
// match to a known one. Blank values are skipped.
func warnUnknownValues(w io.Writer, style, weight, category string) {
	if strings.TrimSpace(style) != "" && !font.ParseStyle(style).Known() {
		fmt.Fprintf(w, "warning: unknown style %q (known: %s)\n", style, joinValues(font.Styles))
	}
	if strings.TrimSpace(weight) != "" && !font.ParseWeight(weight).Known() {
		fmt.Fprintf(w, "warning: unknown weight %q (known: %s)\n", weight, joinValues(font.Weights))
	}
	if strings.TrimSpace(category) != "" && !font.ParseCategory(category).Known() {
		fmt.Fprintf(w, "warning: unknown category %q (known: %s)\n", category, joinValues(font.Categories))
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid font id %q: must be a positive integer", arg)
	}
	return id, nil
}

func printFontTable(w io.Writer, fonts []font.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tSTYLE\tWEIGHT\tCATEGORY")
	for _, f := range fonts {
		size := f.Size
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, size, f.Style, f.Weight, f.Category)
	}
	return tw.Flush()
}

func printFont(w io.Writer, rec font.Record) error {
	if fontsJSON {
		return printJSON(w, rec)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", rec.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", rec.Name)
	fmt.Fprintf(tw, "Size:\t%s\n", rec.Size)
	fmt.Fprintf(tw, "Style:\t%s\n", rec.Style)
	fmt.Fprintf(tw, "Weight:\t%s\n", rec.Weight)
	fmt.Fprintf(tw, "Category:\t%s\n", rec.Category)
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
